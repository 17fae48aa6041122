// Package cli parses tridgen's command line. Kept separate from main so
// argument handling stays unit-testable.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// Config is the parsed run configuration for tridgen.
type Config struct {
	// Count is the number of ID numbers to generate.
	Count int
	// Seed seeds the generator's PRNG for reproducible output; 0 means a
	// random seed.
	Seed uint64
	// Check holds candidate numbers to validate instead of generating.
	// Empty in generate mode.
	Check []string
}

// ExitError carries a process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

const usage = `tridgen - generates and checks Turkish national ID numbers.

Usage:
  tridgen [options] [COUNT]
  tridgen -check ID...

Arguments:
  COUNT
    Number of ID numbers to generate (default 1).

Options:
`

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating the program should exit cleanly (help was requested),
// or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("tridgen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	seedFlag := flagSet.Uint64("seed", 0, "PRNG seed for reproducible output. 0 picks a random seed.")
	checkFlag := flagSet.Bool("check", false, "Validate the given ID numbers instead of generating.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{Count: 1, Seed: *seedFlag}

	if *checkFlag {
		if flagSet.NArg() == 0 {
			return nil, false, &ExitError{Code: 2, Message: "-check requires at least one ID number"}
		}
		cfg.Check = flagSet.Args()
		return cfg, false, nil
	}

	switch flagSet.NArg() {
	case 0:
	case 1:
		count, err := strconv.Atoi(flagSet.Arg(0))
		if err != nil || count < 0 {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid COUNT %q", flagSet.Arg(0))}
		}
		cfg.Count = count
	default:
		return nil, false, &ExitError{Code: 2, Message: "too many arguments"}
	}
	return cfg, false, nil
}
