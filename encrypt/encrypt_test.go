package encrypt_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finder.ink/gcipher/encrypt"
	"finder.ink/gcipher/table"
)

func newEncryptor(t *testing.T, seed uint64) *encrypt.Encryptor {
	t.Helper()
	tbl, err := table.Generate(seed)
	require.NoError(t, err)
	e, err := encrypt.NewEncryptor(tbl)
	require.NoError(t, err)
	return e
}

func TestEncryptKnownVector(t *testing.T) {
	e := newEncryptor(t, table.DefaultSeed)

	data := []byte("hello")
	e.Encrypt(data)
	assert.Equal(t, []byte{0x18, 0x47, 0x7e, 0x7e, 0xb1}, data)

	e.Decrypt(data)
	assert.Equal(t, []byte("hello"), data)
}

func TestRoundTripAllBytes(t *testing.T) {
	for _, seed := range []uint64{0, 1, 25, 70, 1 << 40} {
		e := newEncryptor(t, seed)

		data := make([]byte, 256)
		for i := range data {
			data[i] = byte(i)
		}
		e.Encrypt(data)

		seen := make(map[byte]bool, len(data))
		for _, b := range data {
			seen[b] = true
		}
		require.Len(t, seen, 256, "seed %d", seed)

		e.Decrypt(data)
		for i := range data {
			require.Equal(t, byte(i), data[i], "seed %d", seed)
		}
	}
}

// The identity table leaves every byte where it is.
func TestIdentityTable(t *testing.T) {
	e, err := encrypt.NewEncryptor(table.Identity())
	require.NoError(t, err)

	data := []byte{0, 1, 127, 128, 255}
	e.Encrypt(data)
	assert.Equal(t, []byte{0, 1, 127, 128, 255}, data)
}

func TestRejectsBrokenTable(t *testing.T) {
	tbl := table.Identity()
	tbl[10] = tbl[11]

	_, err := encrypt.NewEncryptor(tbl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, table.ErrNotPermutation))
}
