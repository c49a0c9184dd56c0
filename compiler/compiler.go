// Package compiler is a single-pass Pratt compiler: it walks the token
// stream exactly once and emits bytecode directly into a vm.Chunk,
// without ever materializing an expression tree.
package compiler

import (
	"io"
	"strconv"

	"loxbyte/scanner"
	"loxbyte/token"
	"loxbyte/vm"
)

// Compiler holds the parser's position (previous/current token) and the
// chunk it is emitting into. A Compiler is single-use: construct one per
// call to Compile.
type Compiler struct {
	source  string
	scanner *scanner.Scanner
	chunk   *vm.Chunk

	previous token.Token
	current  token.Token
}

// Compile parses a single expression from source and emits it into
// chunk, followed by a trailing OpReturn. When debug is true, the
// resulting chunk is disassembled to out after a successful compile.
func Compile(source string, chunk *vm.Chunk, debug bool, out io.Writer) error {
	c := &Compiler{
		source:  source,
		scanner: scanner.New(source),
		chunk:   chunk,
	}

	if err := c.advance(); err != nil {
		return err
	}
	if err := c.expression(); err != nil {
		return err
	}
	if err := c.consume(token.Eof, "expect end of expression"); err != nil {
		return err
	}
	c.emitReturn()

	if debug {
		chunk.Disassemble(out, "code")
	}
	return nil
}

// advance shifts current into previous and scans the next token.
func (c *Compiler) advance() error {
	c.previous = c.current
	tok, err := c.scanner.ScanToken()
	if err != nil {
		return err
	}
	c.current = tok
	return nil
}

// consume advances past current if it matches kind, otherwise reports a
// compile error naming what was expected and what was found instead.
func (c *Compiler) consume(kind token.Kind, message string) error {
	if c.current.Kind == kind {
		return c.advance()
	}
	return &CompileError{
		Kind:     UnexpectedToken,
		Token:    c.current,
		Expected: kind,
		Found:    c.current.Kind,
		Message:  message,
	}
}

func (c *Compiler) expression() error {
	return c.parsePrecedence(precAssignment)
}

// parsePrecedence runs the core Pratt loop: consume one prefix
// expression, then keep folding in infix operators whose precedence
// meets min. Binary handlers recurse at precedence+1, so the right
// operand stops at an operator of the same level, which makes those
// operators left-associative.
func (c *Compiler) parsePrecedence(min precedence) error {
	if err := c.advance(); err != nil {
		return err
	}

	prefix := ruleFor(c.previous.Kind).prefix
	if prefix == nil {
		return &CompileError{
			Kind:    ExpectedExpression,
			Token:   c.previous,
			Message: "expected expression",
		}
	}
	if err := prefix(c); err != nil {
		return err
	}

	for min <= ruleFor(c.current.Kind).precedence {
		if err := c.advance(); err != nil {
			return err
		}
		infix := ruleFor(c.previous.Kind).infix
		if err := infix(c); err != nil {
			return err
		}
	}
	return nil
}

func grouping(c *Compiler) error {
	if err := c.expression(); err != nil {
		return err
	}
	return c.consume(token.RightParen, "expect ')' after expression")
}

func unary(c *Compiler) error {
	opType := c.previous.Kind
	line := c.previous.Line

	if err := c.parsePrecedence(precUnary); err != nil {
		return err
	}

	if opType == token.Minus {
		c.emitByte(byte(vm.OpNegate), line)
	}
	return nil
}

func binary(c *Compiler) error {
	opType := c.previous.Kind
	line := c.previous.Line
	rule := ruleFor(opType)

	if err := c.parsePrecedence(rule.precedence + 1); err != nil {
		return err
	}

	switch opType {
	case token.Plus:
		c.emitByte(byte(vm.OpAdd), line)
	case token.Minus:
		c.emitByte(byte(vm.OpSub), line)
	case token.Star:
		c.emitByte(byte(vm.OpMul), line)
	case token.Slash:
		c.emitByte(byte(vm.OpDiv), line)
	}
	return nil
}

// number parses the previous token's lexeme as a float and emits it as
// a constant. The scanner only ever produces a Number token for a span
// that matched its digit grammar, so a parse failure here means the
// scanner and compiler have disagreed about what a number looks like.
func number(c *Compiler) error {
	lexeme := c.previous.Lexeme(c.source)
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		panic("compiler: scanner produced non-numeric lexeme for Number token: " + lexeme)
	}
	return c.emitConstant(vm.Number(value))
}

func literal(c *Compiler) error {
	line := c.previous.Line
	switch c.previous.Kind {
	case token.True:
		c.emitByte(byte(vm.OpTrue), line)
	case token.False:
		c.emitByte(byte(vm.OpFalse), line)
	case token.Nil:
		c.emitByte(byte(vm.OpNil), line)
	}
	return nil
}

func (c *Compiler) emitByte(b byte, line int) {
	c.chunk.Write(b, line)
}

func (c *Compiler) emitConstant(value vm.Value) error {
	idx, err := c.chunk.AddConstant(value)
	if err != nil {
		return &CompileError{
			Kind:    TooManyConstants,
			Token:   c.previous,
			Message: "too many constants in one chunk",
		}
	}
	c.emitByte(byte(vm.OpConstant), c.previous.Line)
	c.emitByte(byte(idx), c.previous.Line)
	return nil
}

func (c *Compiler) emitReturn() {
	c.emitByte(byte(vm.OpReturn), c.previous.Line)
}
