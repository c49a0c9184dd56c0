package main

import (
	"fmt"
	"strings"

	"loxbyte/compiler"
	"loxbyte/scanner"
	"loxbyte/vm"
)

// spanner is implemented by the error kinds that carry an exact source
// span (LexError, CompileError). RuntimeError only carries a line, since
// a byte offset surviving into the VM is no longer tied to one token.
type spanner interface {
	Span() (start, length, line int)
}

// formatDiagnostic renders err as a one-message-plus-snippet diagnostic
// the way a terminal compiler front end does: the message, then the
// offending source line with a caret span underlining it. Formatting
// diagnostics is explicitly a CLI concern, not the core's.
func formatDiagnostic(source string, err error) string {
	if s, ok := err.(spanner); ok {
		start, length, line := s.Span()
		return fmt.Sprintf("error: %s\n%s", err, snippet(source, start, length, line))
	}
	if _, ok := err.(*vm.RuntimeError); ok {
		return fmt.Sprintf("error: %s", err)
	}
	return fmt.Sprintf("error: %s", err)
}

// snippet extracts the source line containing the span starting at
// start and underlines the length bytes of the span with carets.
func snippet(source string, start, length, line int) string {
	lineStart := strings.LastIndexByte(source[:start], '\n') + 1
	lineEnd := len(source)
	if idx := strings.IndexByte(source[start:], '\n'); idx >= 0 {
		lineEnd = start + idx
	}
	text := source[lineStart:lineEnd]

	column := start - lineStart
	if length < 1 {
		length = 1
	}
	underline := strings.Repeat(" ", column) + strings.Repeat("^", length)

	return fmt.Sprintf("  %4d | %s\n       | %s", line, text, underline)
}

var (
	_ spanner = (*scanner.LexError)(nil)
	_ spanner = (*compiler.CompileError)(nil)
)
