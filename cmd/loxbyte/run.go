package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"loxbyte"
	"loxbyte/compiler"
	"loxbyte/scanner"
	"loxbyte/vm"
)

type runCmd struct {
	debug bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "compile and run a source file" }
func (*runCmd) Usage() string {
	return `run [-debug] <file>:
  Compile and execute a single source file.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debug, "debug", false, "disassemble and trace execution")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, (&ArgumentError{Message: "run: missing source file"}).Error())
		return exitUsage
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitUsage
	}

	if err := loxbyte.New(c.debug).Interpret(string(data), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, formatDiagnostic(string(data), err))
		return subcommands.ExitStatus(exitStatusFor(err))
	}
	return subcommands.ExitSuccess
}

// exitStatusFor maps an interpreter error to a sysexits-style code: a
// lexing or compile failure is a data error, a runtime failure is a
// software error.
func exitStatusFor(err error) int {
	switch err.(type) {
	case *scanner.LexError, *compiler.CompileError:
		return exitDataErr
	case *vm.RuntimeError:
		return exitSoftErr
	default:
		return exitSoftErr
	}
}
