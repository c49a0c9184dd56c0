package compiler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"loxbyte/scanner"
	"loxbyte/token"
	"loxbyte/vm"
)

// run compiles source and, on success, executes it, returning the
// printed result.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	chunk := vm.NewChunk()
	if err := Compile(source, chunk, false, nil); err != nil {
		return "", err
	}

	var out bytes.Buffer
	machine := vm.New(false, &out)
	if err := machine.Run(chunk); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

func TestCompile_Literal(t *testing.T) {
	out, err := run(t, "1")
	require.NoError(t, err)
	require.Equal(t, "1", out)
}

func TestCompile_Addition(t *testing.T) {
	out, err := run(t, "1 + 2")
	require.NoError(t, err)
	require.Equal(t, "3", out)
}

func TestCompile_PrecedenceAndGrouping(t *testing.T) {
	out, err := run(t, "(-1 + 2) * 3 - -4")
	require.NoError(t, err)
	require.Equal(t, "7", out)
}

func TestCompile_MultiplyBindsTighterThanAdd(t *testing.T) {
	out, err := run(t, "1 + 2 * 3")
	require.NoError(t, err)
	require.Equal(t, "7", out)
}

func TestCompile_Division(t *testing.T) {
	out, err := run(t, "3.4 / 2")
	require.NoError(t, err)
	require.Equal(t, "1.7", out)
}

func TestCompile_FractionalAddition(t *testing.T) {
	out, err := run(t, "1.2 + 3.4")
	require.NoError(t, err)
	require.Equal(t, "4.6", out)
}

func TestCompile_BooleanAndNilLiterals(t *testing.T) {
	for source, want := range map[string]string{
		"true":  "true",
		"false": "false",
		"nil":   "nil",
	} {
		out, err := run(t, source)
		require.NoError(t, err)
		require.Equal(t, want, out)
	}
}

func TestCompile_TrailingOperatorIsExpectedExpression(t *testing.T) {
	_, err := run(t, "1 +")
	require.Error(t, err)
	compileErr, ok := err.(*CompileError)
	require.True(t, ok, "expected *CompileError, got %T", err)
	require.Equal(t, ExpectedExpression, compileErr.Kind)
}

func TestCompile_UnclosedGroupingIsUnexpectedToken(t *testing.T) {
	_, err := run(t, "(1 + 2")
	require.Error(t, err)
	compileErr, ok := err.(*CompileError)
	require.True(t, ok, "expected *CompileError, got %T", err)
	require.Equal(t, UnexpectedToken, compileErr.Kind)
	require.Equal(t, token.RightParen, compileErr.Expected)
	require.Equal(t, token.Eof, compileErr.Found)
}

func TestCompile_UnterminatedStringSurfacesLexError(t *testing.T) {
	_, err := run(t, `"abc`)
	require.Error(t, err)
	_, ok := err.(*scanner.LexError)
	require.True(t, ok, "expected *scanner.LexError, got %T", err)
}

func TestCompile_NegatingNonNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, "-true")
	require.Error(t, err)
	runtimeErr, ok := err.(*vm.RuntimeError)
	require.True(t, ok, "expected *vm.RuntimeError, got %T", err)
	require.Equal(t, vm.TypeMismatch, runtimeErr.Kind)
}

func TestCompile_TooManyConstants(t *testing.T) {
	var source strings.Builder
	for i := 0; i < 257; i++ {
		if i > 0 {
			source.WriteString(" + ")
		}
		source.WriteString("1")
	}

	_, err := run(t, source.String())
	require.Error(t, err)
	compileErr, ok := err.(*CompileError)
	require.True(t, ok, "expected *CompileError, got %T", err)
	require.Equal(t, TooManyConstants, compileErr.Kind)
}
