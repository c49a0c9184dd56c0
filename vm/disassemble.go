package vm

import (
	"fmt"
	"io"
)

// Disassemble prints every instruction in the chunk, in order.
func (c *Chunk) Disassemble(w io.Writer, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		offset = c.DisassembleInstruction(w, offset)
	}
}

// DisassembleInstruction prints the instruction at offset and returns
// the offset of the following instruction.
func (c *Chunk) DisassembleInstruction(w io.Writer, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)

	if offset > 0 && c.LineAt(offset) == c.LineAt(offset-1) {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", c.LineAt(offset))
	}

	op := OpCode(c.Code[offset])

	switch op {
	case OpReturn, OpNegate, OpAdd, OpSub, OpMul, OpDiv, OpNil, OpTrue, OpFalse:
		fmt.Fprintf(w, "%s\n", op)
		return offset + 1
	case OpConstant:
		idx := c.Code[offset+1]
		fmt.Fprintf(w, "%-16s %4d '%s'\n", op, idx, c.Constants[idx])
		return offset + 2
	default:
		fmt.Fprintf(w, "Unknown opcode %d\n", op)
		return offset + 1
	}
}
