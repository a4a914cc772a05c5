package table

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("table index out of range")
	ErrScratchTooLarge = errors.New("scratch buffer too large for seed")
	ErrNotPermutation  = errors.New("table is not a permutation")
	ErrInvalidPasses   = errors.New("pass count must not be negative")
	ErrUnknownPolicy   = errors.New("unknown index policy")
)

// IndexError reports a swap index that fell outside the table under
// POLICY_STRICT.
type IndexError struct {
	Pass  int
	Slot  int
	Index uint64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d) at pass %d slot %d", e.Index, Size, e.Pass, e.Slot)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
