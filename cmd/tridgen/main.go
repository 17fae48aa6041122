// Command tridgen generates random valid Turkish national ID numbers, one
// per line, or checks candidate numbers with -check. It is a thin wrapper:
// all validation logic lives in pkg/trid.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"trid/internal/cli"
	"trid/pkg/trid"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it with an in-memory
// writer and argument list.
func run(out io.Writer, args []string) error {
	cfg, done, err := cli.Parse(args, out)
	if err != nil || done {
		return err
	}
	if len(cfg.Check) > 0 {
		return check(out, cfg.Check)
	}
	return generate(out, cfg)
}

func generate(out io.Writer, cfg *cli.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := 0; i < cfg.Count; i++ {
		seq := trid.SeqMin + rng.Uint32N(trid.SeqMax-trid.SeqMin+1)
		id, err := trid.FromSeq(seq)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id)
	}
	return nil
}

func check(out io.Writer, candidates []string) error {
	failed := 0
	for _, candidate := range candidates {
		if _, err := trid.Parse(candidate); err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", candidate, err)
			continue
		}
		fmt.Fprintf(out, "%s: ok\n", candidate)
	}
	if failed > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
