package encrypt

import (
	"github.com/pkg/errors"

	"finder.ink/gcipher/table"
)

// Encryptor substitutes bytes through a generated table. Encrypt maps a byte
// to the slot holding it, Decrypt maps a slot back to the byte stored there.
type Encryptor struct {
	forward [table.Size]byte
	inverse [table.Size]byte
}

func NewEncryptor(t table.Table) (*Encryptor, error) {
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot build encryptor")
	}

	e := &Encryptor{forward: t.Bytes()}
	for i, b := range e.forward {
		e.inverse[b] = byte(i)
	}
	return e, nil
}

func (e *Encryptor) Encrypt(data []byte) {
	for i := range data {
		data[i] = e.inverse[data[i]]
	}
}

func (e *Encryptor) Decrypt(data []byte) {
	for i := range data {
		data[i] = e.forward[data[i]]
	}
}
