package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"loxbyte"
)

type replCmd struct {
	debug bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive session" }
func (*replCmd) Usage() string {
	return `repl [-debug]:
  Read one expression per line, evaluate it, print the result.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debug, "debug", false, "disassemble and trace each evaluation")
}

func (c *replCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New("> ")
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	runREPL(rl, rl.Stdout(), c.debug)
	return subcommands.ExitSuccess
}

// runREPL drives the read-eval-print loop against any readline-shaped
// source, so it can be exercised in tests without a terminal.
func runREPL(in interface {
	Readline() (string, error)
}, out io.Writer, debug bool) {
	interp := loxbyte.New(debug)

	for {
		line, err := in.Readline()
		if err != nil {
			return // EOF or interrupt ends the session
		}
		if line == "" {
			continue
		}
		if err := interp.Interpret(line, out); err != nil {
			fmt.Fprintln(out, formatDiagnostic(line, err))
		}
	}
}
