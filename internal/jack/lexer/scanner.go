// File: scanner.go
// Title: Jack Scanner
// Description: Converts a character stream into classified Jack tokens with
//              a single cached lookahead token. Whitespace, line comments
//              and block comments are skipped; lexical faults are returned
//              as error tokens rather than Go errors.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Invalid UTF-8 bytes keep their source text

package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
)

const eof = -1

// Scanner tokenizes one Jack source unit
type Scanner struct {
	name   string
	src    *bufio.Reader
	closer io.Closer

	ch     rune   // current character, eof at end of input
	line   int    // line of ch (1-based)
	column int    // column of ch (1-based)
	raw    string // source byte of ch when it is not valid UTF-8

	ahead    Token
	hasAhead bool

	err    error
	closed bool
}

// Open opens a source file for scanning
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "cannot open source file").
			WithCode(code).
			WithOperation("lexer.Open").
			WithDetail("file", path)
	}
	return New(path, f), nil
}

// New creates a scanner reading from r. If r is an io.Closer, Close
// closes it.
func New(name string, r io.Reader) *Scanner {
	s := &Scanner{
		name: name,
		src:  bufio.NewReader(r),
		line: 1,
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	s.advance()
	return s
}

// Name returns the source name the scanner was created with
func (s *Scanner) Name() string {
	return s.name
}

// Next consumes and returns the next token. At end of input it keeps
// returning an EOF token.
func (s *Scanner) Next() Token {
	if s.hasAhead {
		s.hasAhead = false
		return s.ahead
	}
	return s.scan()
}

// Peek returns the next token without consuming it
func (s *Scanner) Peek() Token {
	if !s.hasAhead {
		s.ahead = s.scan()
		s.hasAhead = true
	}
	return s.ahead
}

// Close releases the source. Calling Close more than once is a no-op.
func (s *Scanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.ch = eof
	s.hasAhead = false
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Err returns the first read error other than end of input. A read error
// ends the token stream as if the input ended there.
func (s *Scanner) Err() error {
	return s.err
}

// Tokenize consumes the remaining input. The returned slice ends with the
// EOF token, or with the first error token together with a *LexError.
func (s *Scanner) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := s.Next()
		tokens = append(tokens, tok)

		switch tok.Type {
		case TokenEOF:
			return tokens, nil
		case TokenError:
			return tokens, &LexError{Token: tok}
		}
	}
}

// TokenizeInput tokenizes a source string
func TokenizeInput(name, src string) ([]Token, error) {
	return New(name, strings.NewReader(src)).Tokenize()
}

// LexError reports the first error token met by Tokenize
type LexError struct {
	Token Token
}

// Error implements the error interface
func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d: %s (%q)", e.Token.File, e.Token.Line, e.Token.Code.Message(), e.Token.Value)
}

func (s *Scanner) scan() Token {
	if tok, ok := s.skipSpaceAndComments(); !ok {
		return tok
	}

	line, column := s.line, s.column

	switch ch := s.ch; {
	case ch == eof:
		return s.token(TokenEOF, "EOF", line, column)
	case isLetter(ch):
		return s.scanWord(line, column)
	case isDigit(ch):
		return s.scanInteger(line, column)
	case ch == '"':
		return s.scanString(line, column)
	case IsSymbol(ch):
		s.advance()
		return s.token(TokenSymbol, string(ch), line, column)
	default:
		lexeme := s.text()
		s.advance()
		return s.errorToken(ErrIllegalSymbol, lexeme, line, column)
	}
}

// skipSpaceAndComments returns false with an error token when a block
// comment runs into end of input.
func (s *Scanner) skipSpaceAndComments() (Token, bool) {
	for {
		for isSpace(s.ch) {
			s.advance()
		}

		if s.ch != '/' {
			return Token{}, true
		}

		switch s.peekByte() {
		case '/':
			for s.ch != '\n' && s.ch != eof {
				s.advance()
			}
		case '*':
			s.advance()
			s.advance()
			for !(s.ch == '*' && s.peekByte() == '/') {
				if s.ch == eof {
					return s.errorToken(ErrUnterminatedComment, "/*", s.line, s.column), false
				}
				s.advance()
			}
			s.advance()
			s.advance()
		default:
			return Token{}, true
		}
	}
}

func (s *Scanner) scanWord(line, column int) Token {
	var sb strings.Builder
	for isLetter(s.ch) || isDigit(s.ch) {
		sb.WriteRune(s.ch)
		s.advance()
	}

	word := sb.String()
	if IsKeyword(word) {
		return s.token(TokenReservedWord, word, line, column)
	}
	return s.token(TokenIdentifier, word, line, column)
}

func (s *Scanner) scanInteger(line, column int) Token {
	var sb strings.Builder
	for isDigit(s.ch) {
		sb.WriteRune(s.ch)
		s.advance()
	}
	return s.token(TokenInteger, sb.String(), line, column)
}

// scanString reports faults at the line of the opening quote. The
// newline that ends an unterminated literal is left unconsumed.
func (s *Scanner) scanString(line, column int) Token {
	s.advance() // opening quote

	var sb strings.Builder
	for s.ch != '"' {
		switch s.ch {
		case '\n':
			return s.errorToken(ErrNewlineInString, `"`+sb.String(), line, column)
		case eof:
			return s.errorToken(ErrUnterminatedString, `"`+sb.String(), line, column)
		}
		sb.WriteString(s.text())
		s.advance()
	}
	s.advance() // closing quote

	return s.token(TokenString, sb.String(), line, column)
}

// advance moves to the next character. The line counter steps when the
// character being left is a newline, so EOF after a trailing newline
// sits on the following line.
func (s *Scanner) advance() {
	if s.ch == '\n' {
		s.line++
		s.column = 0
	}
	if s.closed {
		s.ch = eof
		return
	}

	s.raw = ""
	r, size, err := s.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) && s.err == nil {
			s.err = err
		}
		if s.ch != eof {
			s.column++
		}
		s.ch = eof
		return
	}
	if r == utf8.RuneError && size == 1 {
		_ = s.src.UnreadRune()
		b, _ := s.src.ReadByte()
		s.raw = string([]byte{b})
	}
	s.ch = r
	s.column++
}

// text returns the source text of the current character
func (s *Scanner) text() string {
	if s.raw != "" {
		return s.raw
	}
	return string(s.ch)
}

func (s *Scanner) peekByte() byte {
	if s.closed {
		return 0
	}
	b, err := s.src.Peek(1)
	if err != nil {
		return 0
	}
	return b[0]
}

func (s *Scanner) token(tt TokenType, value string, line, column int) Token {
	return Token{Type: tt, Value: value, Line: line, Column: column, File: s.name}
}

func (s *Scanner) errorToken(code ErrorCode, value string, line, column int) Token {
	return Token{Type: TokenError, Value: value, Line: line, Column: column, File: s.name, Code: code}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}
