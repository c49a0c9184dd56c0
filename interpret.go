// Package loxbyte composes the compiler and the vm into a single
// source-to-result pipeline. It lives above both so that neither
// package needs to import the other.
package loxbyte

import (
	"io"

	"loxbyte/compiler"
	"loxbyte/vm"
)

// Interpreter compiles and runs Lox expression source. It is reusable
// across calls to Interpret.
type Interpreter struct {
	debug bool
}

// New constructs an Interpreter. When debug is true, both the compiled
// chunk and the VM's per-instruction trace are written alongside the
// program's result.
func New(debug bool) *Interpreter {
	return &Interpreter{debug: debug}
}

// Interpret compiles source and runs it to completion, writing the
// final result to out. A *compiler.CompileError, *scanner.LexError, or
// *vm.RuntimeError is returned as-is so callers can inspect its Kind.
func (i *Interpreter) Interpret(source string, out io.Writer) error {
	chunk := vm.NewChunk()
	if err := compiler.Compile(source, chunk, i.debug, out); err != nil {
		return err
	}

	machine := vm.New(i.debug, out)
	return machine.Run(chunk)
}
