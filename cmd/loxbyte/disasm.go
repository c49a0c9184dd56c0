package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"loxbyte/compiler"
	"loxbyte/vm"
)

type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "print a file's compiled bytecode without running it" }
func (*disasmCmd) Usage() string {
	return `disasm <file>:
  Compile a file and print its disassembly to stdout.
`
}

func (*disasmCmd) SetFlags(*flag.FlagSet) {}

func (*disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, (&ArgumentError{Message: "disasm: missing source file"}).Error())
		return exitUsage
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "disasm: %v\n", err)
		return exitUsage
	}

	chunk := vm.NewChunk()
	if err := compiler.Compile(string(data), chunk, false, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, formatDiagnostic(string(data), err))
		return subcommands.ExitStatus(exitStatusFor(err))
	}

	chunk.Disassemble(os.Stdout, args[0])
	return subcommands.ExitSuccess
}
