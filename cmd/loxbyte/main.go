// Command loxbyte compiles and runs Lox expressions: one shot from a
// file, interactively from a REPL, concurrently across many files, or
// disassembled without running.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&batchCmd{}, "")
	subcommands.Register(&disasmCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// ArgumentError reports CLI misuse — a missing source-file argument —
// distinct from a compile or runtime failure in the program being run.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// Exit codes follow the sysexits.h convention the batch runner needs
// to distinguish compile-time from run-time failure.
const (
	exitUsage   = 64
	exitDataErr = 65 // compile error
	exitSoftErr = 70 // runtime error
)
