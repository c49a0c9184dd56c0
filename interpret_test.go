package loxbyte

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"loxbyte/compiler"
	"loxbyte/vm"
)

func interpret(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(false).Interpret(source, &out)
	return strings.TrimSpace(out.String()), err
}

func TestInterpret_EndToEndExpressions(t *testing.T) {
	cases := map[string]string{
		"1":                 "1",
		"1 + 2":             "3",
		"(-1 + 2) * 3 - -4": "7",
		"1 + 2 * 3":         "7",
		"3.4 / 2":           "1.7",
		"1.2 + 3.4":         "4.6",
		"true":              "true",
		"nil":               "nil",
	}
	for source, want := range cases {
		out, err := interpret(t, source)
		require.NoError(t, err, "source %q", source)
		require.Equal(t, want, out, "source %q", source)
	}
}

func TestInterpret_CompileErrorPropagates(t *testing.T) {
	_, err := interpret(t, "1 +")
	require.Error(t, err)
	compileErr, ok := err.(*compiler.CompileError)
	require.True(t, ok, "expected *compiler.CompileError, got %T", err)
	require.Equal(t, compiler.ExpectedExpression, compileErr.Kind)
}

func TestInterpret_RuntimeErrorPropagates(t *testing.T) {
	_, err := interpret(t, "-true")
	require.Error(t, err)
	runtimeErr, ok := err.(*vm.RuntimeError)
	require.True(t, ok, "expected *vm.RuntimeError, got %T", err)
	require.Equal(t, vm.TypeMismatch, runtimeErr.Kind)
}

func TestInterpret_DebugModeDisassemblesAndTraces(t *testing.T) {
	var out bytes.Buffer
	err := New(true).Interpret("1 + 2", &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "== code ==")
	require.Contains(t, out.String(), "3")
}
