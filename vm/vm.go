package vm

import (
	"fmt"
	"io"
)

// stackMax is the operand stack's fixed capacity. No program in this
// core's grammar can exceed this depth: each expression node
// contributes at most a small constant.
const stackMax = 256

// VM is a stack machine that executes a compiled Chunk to completion.
// A VM instance is reusable across multiple Run calls; between calls
// the stack is logically reset.
type VM struct {
	stack [stackMax]Value
	top   int
	debug bool
	out   io.Writer
}

// New constructs a VM. When debug is true, the dispatch loop prints the
// stack contents and disassembles each instruction before executing it.
func New(debug bool, out io.Writer) *VM {
	return &VM{debug: debug, out: out}
}

func (vm *VM) reset() {
	vm.top = 0
}

func (vm *VM) push(v Value) {
	vm.stack[vm.top] = v
	vm.top++
}

func (vm *VM) pop() Value {
	vm.top--
	return vm.stack[vm.top]
}

// Run executes chunk to completion, printing the final value to the
// VM's writer on success.
func (vm *VM) Run(chunk *Chunk) error {
	vm.reset()
	ip := 0

	for {
		if vm.debug {
			vm.traceStack()
			chunk.DisassembleInstruction(vm.out, ip)
		}

		opcodeOffset := ip
		op := OpCode(chunk.Code[ip])
		ip++

		switch op {
		case OpConstant:
			idx := chunk.Code[ip]
			ip++
			vm.push(chunk.Constants[idx])

		case OpNil:
			vm.push(Nil)
		case OpTrue:
			vm.push(Bool(true))
		case OpFalse:
			vm.push(Bool(false))

		case OpNegate:
			a := vm.pop()
			result, err := a.Neg()
			if err != nil {
				return vm.typeError(chunk, opcodeOffset, err)
			}
			vm.push(result)

		case OpAdd, OpSub, OpMul, OpDiv:
			b := vm.pop()
			a := vm.pop()
			result, err := applyBinary(op, a, b)
			if err != nil {
				return vm.typeError(chunk, opcodeOffset, err)
			}
			vm.push(result)

		case OpReturn:
			result := vm.pop()
			fmt.Fprintln(vm.out, result.String())
			return nil

		default:
			return vm.undecodableError(chunk, opcodeOffset, op)
		}
	}
}

func applyBinary(op OpCode, a, b Value) (Value, error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	case OpDiv:
		return a.Div(b)
	default:
		panic("applyBinary called with non-binary opcode")
	}
}

func (vm *VM) typeError(chunk *Chunk, offset int, cause error) error {
	return &RuntimeError{
		Kind:    TypeMismatch,
		Line:    chunk.LineAt(offset),
		Message: cause.Error(),
	}
}

func (vm *VM) undecodableError(chunk *Chunk, offset int, op OpCode) error {
	return &RuntimeError{
		Kind:    UndecodableOpcode,
		Line:    chunk.LineAt(offset),
		Message: fmt.Sprintf("byte %d does not decode to a known instruction", byte(op)),
	}
}

func (vm *VM) traceStack() {
	fmt.Fprint(vm.out, "          ")
	for i := 0; i < vm.top; i++ {
		fmt.Fprintf(vm.out, "[ %s ]", vm.stack[i])
	}
	fmt.Fprintln(vm.out)
}
