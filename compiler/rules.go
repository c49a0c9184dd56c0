package compiler

import "loxbyte/token"

// precedence is the compiler's operator-precedence ladder, low to high.
// Kept as an ordered enum — a lookup keyed by token kind — rather than
// scattering precedence comparisons through handler bodies.
type precedence int

const (
	precNone precedence = iota
	precAssignment
	precOr
	precAnd
	precEquality
	precComparison
	precTerm // + -
	precFactor
	precUnary
	precCall
	precPrimary
)

// parseFn is a prefix or infix handler. Prefix handlers parse their own
// right-hand side by recursively calling parsePrecedence; infix handlers
// assume the left operand's bytecode is already emitted and on the
// stack, and recurse with precedence+1 to make operators left-associative.
type parseFn func(c *Compiler) error

type rule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

// rules is the parse-rule table: every token kind maps to its prefix
// handler, infix handler, and infix precedence. Token kinds absent from
// the map get the zero rule (no handlers, precNone) — the core's
// grammar is a single expression, so most keywords and punctuation have
// nothing to parse.
var rules = map[token.Kind]rule{
	token.LeftParen: {prefix: grouping},
	token.Minus:     {prefix: unary, infix: binary, precedence: precTerm},
	token.Plus:      {infix: binary, precedence: precTerm},
	token.Slash:     {infix: binary, precedence: precFactor},
	token.Star:      {infix: binary, precedence: precFactor},
	token.Number:    {prefix: number},
	token.True:      {prefix: literal},
	token.False:     {prefix: literal},
	token.Nil:       {prefix: literal},
}

func ruleFor(kind token.Kind) rule {
	return rules[kind]
}
