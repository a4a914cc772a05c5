package app

import (
	"bufio"
	"io"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"finder.ink/gcipher/encrypt"
	"finder.ink/gcipher/table"
)

var log = logging.Logger("gcipher/app")

type Runner struct {
	config Config
}

func NewRunner(config Config) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Runner{config: config}, nil
}

func (p *Runner) Config() Config {
	return p.config
}

func (p *Runner) Run(in io.Reader, out io.Writer) error {
	t, err := table.GenerateWithOptions(p.config.Seed, table.Options{
		Passes: p.config.Passes,
		Policy: p.config.Policy,
	})
	if err != nil {
		return errors.Wrapf(err, "generate table for seed %d", p.config.Seed)
	}
	log.Debugw("table ready", "mode", p.config.Mode, "seed", p.config.Seed)

	switch p.config.Mode {
	case MODE_TABLE:
		return table.Format(out, t, p.config.Tail)
	case MODE_ENCODE, MODE_DECODE:
		e, err := encrypt.NewEncryptor(t)
		if err != nil {
			return err
		}
		return p.transfer(in, out, e)
	default:
		return errors.Wrapf(ErrUnknownMode, "mode %d", uint8(p.config.Mode))
	}
}

func (p *Runner) transfer(src io.Reader, dst io.Writer, e *encrypt.Encryptor) (err error) {
	bw := bufio.NewWriter(dst)
	defer func() {
		err = multierr.Append(err, bw.Flush())
	}()

	buff := make([]byte, 0x10000)
	total := 0
	for {
		n, rerr := src.Read(buff)
		if n > 0 {
			if p.config.Mode == MODE_ENCODE {
				e.Encrypt(buff[:n])
			} else {
				e.Decrypt(buff[:n])
			}
			if _, werr := bw.Write(buff[:n]); werr != nil {
				return errors.Wrap(werr, "write output")
			}
			total += n
		}
		if rerr == io.EOF {
			log.Debugf("%s processed %d bytes", p.config.Mode, total)
			return nil
		}
		if rerr != nil {
			return errors.Wrap(rerr, "read input")
		}
	}
}
