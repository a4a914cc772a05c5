package app

import (
	"github.com/pkg/errors"

	"finder.ink/gcipher/table"
)

type Mode uint8

const (
	MODE_TABLE  Mode = 0
	MODE_ENCODE Mode = 1
	MODE_DECODE Mode = 2
)

func (m Mode) String() string {
	switch m {
	case MODE_TABLE:
		return "MODE_TABLE"
	case MODE_ENCODE:
		return "MODE_ENCODE"
	case MODE_DECODE:
		return "MODE_DECODE"
	default:
		return "UNKNOW"
	}
}

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrNeedsTable  = errors.New("encode and decode need a permutation table")
)

type Config struct {
	Mode   Mode
	Seed   uint64
	Passes int
	Policy table.IndexPolicy
	Tail   table.TailIndex
}

// DefaultConfig reproduces the plain invocation: print the table for seed 25.
func DefaultConfig() Config {
	return Config{
		Mode:   MODE_TABLE,
		Seed:   table.DefaultSeed,
		Passes: table.DefaultPasses,
		Policy: table.POLICY_WRAP,
		Tail:   table.TAIL_FIXED,
	}
}

func (c Config) Validate() error {
	switch c.Mode {
	case MODE_TABLE:
	case MODE_ENCODE, MODE_DECODE:
		// scratch tables can lose values and cannot be inverted
		if c.Policy == table.POLICY_SCRATCH {
			return errors.Wrapf(ErrNeedsTable, "policy %s", c.Policy)
		}
	default:
		return errors.Wrapf(ErrUnknownMode, "mode %d", uint8(c.Mode))
	}
	if c.Passes < 0 {
		return errors.Wrapf(table.ErrInvalidPasses, "got %d", c.Passes)
	}
	return nil
}
