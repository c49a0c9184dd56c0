// Package scanner turns a UTF-8 source string into a lazy sequence of
// tokens with absolute byte offsets, per clox's single-pass scanner.
package scanner

import "loxbyte/token"

// Scanner borrows the source string for the duration of compilation and
// produces tokens on demand via ScanToken.
type Scanner struct {
	source string
	start  int // byte offset where the current token began
	pos    int // byte offset of the next unread byte
	line   int
}

// New creates a Scanner over source, starting at line 1.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// ScanToken returns the next token, or a *LexError if the source is
// lexically invalid at the current position. Once the source is
// exhausted it returns an Eof token (length 0) indefinitely.
func (s *Scanner) ScanToken() (token.Token, error) {
	if err := s.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	s.start = s.pos

	if s.atEnd() {
		return s.makeToken(token.Eof), nil
	}

	c := s.advance()

	switch {
	case isAlpha(c):
		return s.identifier(), nil
	case isDigit(c):
		return s.number(), nil
	}

	switch c {
	case '(':
		return s.makeToken(token.LeftParen), nil
	case ')':
		return s.makeToken(token.RightParen), nil
	case '{':
		return s.makeToken(token.LeftBrace), nil
	case '}':
		return s.makeToken(token.RightBrace), nil
	case ';':
		return s.makeToken(token.Semicolon), nil
	case ',':
		return s.makeToken(token.Comma), nil
	case '.':
		return s.makeToken(token.Dot), nil
	case '+':
		return s.makeToken(token.Plus), nil
	case '-':
		return s.makeToken(token.Minus), nil
	case '*':
		return s.makeToken(token.Star), nil
	case '/':
		return s.makeToken(token.Slash), nil
	case '!':
		return s.makeToken(s.either('=', token.BangEqual, token.Bang)), nil
	case '=':
		return s.makeToken(s.either('=', token.EqualEqual, token.Equal)), nil
	case '<':
		return s.makeToken(s.either('=', token.LessEqual, token.Less)), nil
	case '>':
		return s.makeToken(s.either('=', token.GreaterEqual, token.Greater)), nil
	case '"':
		return s.string()
	}

	return token.Token{}, &LexError{
		Kind:    UnexpectedCharacter,
		Start:   s.start,
		Length:  s.pos - s.start,
		Line:    s.line,
		Message: "unexpected character",
	}
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

// advance consumes and returns the current byte.
func (s *Scanner) advance() byte {
	c := s.source[s.pos]
	s.pos++
	return c
}

// peek returns the next unread byte without consuming it.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.pos]
}

// peekNext returns the byte after peek, the second character of
// lookahead needed for "//" comments and fractional numbers.
func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.pos] != expected {
		return false
	}
	s.pos++
	return true
}

func (s *Scanner) either(expected byte, ifMatch, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return ifMatch
	}
	return otherwise
}

func (s *Scanner) makeToken(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Start: s.start, Length: s.pos - s.start, Line: s.line}
}

func (s *Scanner) skipWhitespaceAndComments() error {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.advance()
				}
			} else {
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *Scanner) string() (token.Token, error) {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		return token.Token{}, &LexError{
			Kind:    UnterminatedString,
			Start:   s.start,
			Length:  s.pos - s.start,
			Line:    s.line,
			Message: "unterminated string",
		}
	}

	s.advance() // closing quote
	return s.makeToken(token.String), nil
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(token.Number)
}

func (s *Scanner) identifier() token.Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	lexeme := s.source[s.start:s.pos]
	return s.makeToken(token.LookupIdentifier(lexeme))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
