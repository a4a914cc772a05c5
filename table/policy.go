package table

import (
	"strings"

	"github.com/pkg/errors"
)

// IndexPolicy decides what happens when a computed swap index does not fit
// in the table.
type IndexPolicy uint8

const (
	POLICY_WRAP    IndexPolicy = 0
	POLICY_STRICT  IndexPolicy = 1
	POLICY_SCRATCH IndexPolicy = 2
)

func (p IndexPolicy) String() string {
	switch p {
	case POLICY_WRAP:
		return "wrap"
	case POLICY_STRICT:
		return "strict"
	case POLICY_SCRATCH:
		return "scratch"
	default:
		return "UNKNOW"
	}
}

func ParsePolicy(name string) (IndexPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wrap":
		return POLICY_WRAP, nil
	case "strict":
		return POLICY_STRICT, nil
	case "scratch":
		return POLICY_SCRATCH, nil
	default:
		return POLICY_WRAP, errors.Wrapf(ErrUnknownPolicy, "%q, expected [wrap|strict|scratch]", name)
	}
}

// TailIndex selects the element printed after the last separator.
type TailIndex uint8

const (
	// TAIL_FIXED prints table[255].
	TAIL_FIXED TailIndex = 0
	// TAIL_LEGACY prints table[25], matching the output of the old C generator.
	TAIL_LEGACY TailIndex = 1
)

func (t TailIndex) Index() int {
	if t == TAIL_LEGACY {
		return 25
	}
	return Size - 1
}

func (t TailIndex) String() string {
	switch t {
	case TAIL_FIXED:
		return "TAIL_FIXED"
	case TAIL_LEGACY:
		return "TAIL_LEGACY"
	default:
		return "UNKNOW"
	}
}
