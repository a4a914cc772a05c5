package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"finder.ink/gcipher/app"
	"finder.ink/gcipher/table"
)

var log = logging.Logger("gcipher")

func parseArgs(args []string, stderr io.Writer) (app.Config, bool, error) {
	config := app.DefaultConfig()
	if len(args) == 0 {
		return config, false, nil
	}

	var seed uint64
	var passes int
	var policy string
	var legacyTail, verbose bool

	cmd := flag.NewFlagSet(args[0], flag.ContinueOnError)
	cmd.SetOutput(stderr)
	cmd.Uint64Var(&seed, "seed", table.DefaultSeed, "table seed")
	cmd.IntVar(&passes, "passes", table.DefaultPasses, "number of scrambling passes")
	cmd.StringVar(&policy, "policy", "wrap", "out-of-range index policy: [wrap|strict|scratch]")
	cmd.BoolVar(&verbose, "v", false, "debug logging on stderr")

	switch args[0] {
	case "table":
		cmd.BoolVar(&legacyTail, "legacy-tail", false, "print element 25 as the last element, like the old generator")
		config.Mode = app.MODE_TABLE
	case "encode":
		config.Mode = app.MODE_ENCODE
	case "decode":
		config.Mode = app.MODE_DECODE
	default:
		return config, false, fmt.Errorf("unknow subcommand: %s, expected [table|encode|decode]", args[0])
	}

	if err := cmd.Parse(args[1:]); err != nil {
		return config, false, err
	}
	if cmd.NArg() != 0 {
		return config, false, fmt.Errorf("unexpected arguments: %v", cmd.Args())
	}

	p, err := table.ParsePolicy(policy)
	if err != nil {
		return config, false, err
	}

	config.Seed = seed
	config.Passes = passes
	config.Policy = p
	if legacyTail {
		config.Tail = table.TAIL_LEGACY
	}
	return config, verbose, config.Validate()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config, verbose, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "args error:", err.Error())
		return 1
	}
	if verbose {
		if err := logging.SetLogLevelRegex("gcipher.*", "debug"); err != nil {
			fmt.Fprintln(stderr, "log level error:", err.Error())
			return 1
		}
	}
	log.Debugf("%+v", config)

	runner, err := app.NewRunner(config)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	if err := runner.Run(stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
