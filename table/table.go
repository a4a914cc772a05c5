// Package table builds the 256-entry substitution table used by gcipher.
//
// A table starts as the sequence -128..127 and is scrambled by a fixed
// number of passes, each pass swapping two seed-dependent indices for every
// slot. The scrambling is a plain index formula and has no cryptographic
// strength.
package table

import (
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
)

var log = logging.Logger("gcipher/table")

const (
	Size   = 256
	Offset = 128

	DefaultSeed   uint64 = 25
	DefaultPasses        = 25

	// MaxScratch bounds the buffer POLICY_SCRATCH may allocate.
	MaxScratch = 1 << 20
)

type Table [Size]int

type Options struct {
	Passes int
	Policy IndexPolicy
}

func DefaultOptions() Options {
	return Options{
		Passes: DefaultPasses,
		Policy: POLICY_WRAP,
	}
}

// Identity returns the unscrambled table, t[i] = i - 128.
func Identity() Table {
	var t Table
	for i := range t {
		t[i] = i - Offset
	}
	return t
}

func Generate(seed uint64) (Table, error) {
	return GenerateWithOptions(seed, DefaultOptions())
}

func GenerateWithOptions(seed uint64, opts Options) (Table, error) {
	if opts.Passes < 0 {
		return Table{}, errors.Wrapf(ErrInvalidPasses, "got %d", opts.Passes)
	}

	buf, err := newBuffer(seed, opts)
	if err != nil {
		return Table{}, err
	}
	log.Debugw("generating table", "seed", seed, "passes", opts.Passes, "policy", opts.Policy, "buffer", len(buf))

	wrapped := 0
	// fit applies the policy to an index past the end of the table.
	fit := func(index uint64, pass, slot int) (uint64, error) {
		if index < Size {
			return index, nil
		}
		switch opts.Policy {
		case POLICY_WRAP:
			wrapped++
			return index % Size, nil
		case POLICY_STRICT:
			return 0, &IndexError{Pass: pass, Slot: slot, Index: index}
		}
		return index, nil
	}

	for pass := 0; pass < opts.Passes; pass++ {
		for v := 0; v < Size; v++ {
			index1, err := fit(absDiff(uint64(v*v%Size), uint64(pass)), pass, v)
			if err != nil {
				return Table{}, err
			}
			index2, err := fit(absDiff(uint64(v)*seed, uint64(pass)), pass, v)
			if err != nil {
				return Table{}, err
			}

			buf[index1], buf[index2] = buf[index2], buf[index1]
		}
	}
	if wrapped > 0 {
		log.Debugf("wrapped %d out-of-range indices for seed %d", wrapped, seed)
	}

	var t Table
	copy(t[:], buf)
	return t, nil
}

// newBuffer allocates the working buffer. Only POLICY_SCRATCH gets room past
// the table itself: enough zeroed slots for the largest index the options can
// produce, 255*seed on the first pass or passes-1 on the last one.
func newBuffer(seed uint64, opts Options) ([]int, error) {
	size := uint64(Size)
	switch opts.Policy {
	case POLICY_WRAP, POLICY_STRICT:
	case POLICY_SCRATCH:
		if seed > (MaxScratch-1)/(Size-1) || opts.Passes > MaxScratch {
			return nil, errors.Wrapf(ErrScratchTooLarge, "seed %d with %d passes needs more than %d slots", seed, opts.Passes, MaxScratch)
		}
		if worst := (Size-1)*seed + 1; worst > size {
			size = worst
		}
		if last := uint64(opts.Passes); last > size {
			size = last
		}
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "policy %d", uint8(opts.Policy))
	}

	buf := make([]int, size)
	for i := 0; i < Size; i++ {
		buf[i] = i - Offset
	}
	return buf, nil
}

func absDiff(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return b - a
}

// Validate checks that t holds every value in -128..127 exactly once.
func (t Table) Validate() error {
	var seen [Size]bool
	for i, v := range t {
		if v < -Offset || v >= Size-Offset {
			return errors.Wrapf(ErrNotPermutation, "value %d at index %d is out of range", v, i)
		}
		if seen[v+Offset] {
			return errors.Wrapf(ErrNotPermutation, "value %d repeated at index %d", v, i)
		}
		seen[v+Offset] = true
	}
	return nil
}

// Bytes maps the table onto 0..255 by adding Offset to every entry.
func (t Table) Bytes() [Size]byte {
	var b [Size]byte
	for i, v := range t {
		b[i] = byte(v + Offset)
	}
	return b
}
