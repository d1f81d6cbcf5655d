// File: token.go
// Title: Jack Token Definitions
// Description: Token kinds, lexical error codes and the reserved word and
//              symbol sets of the Jack language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"fmt"
	"strings"
)

// TokenType represents the coarse lexical category of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenError

	TokenIdentifier   // x, Main, _tmp1
	TokenReservedWord // class, let, int, ...
	TokenInteger      // 42
	TokenString       // "text", value without quotes
	TokenSymbol       // { } ( ) [ ] . , ; + - * / & | < > = ~
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenReservedWord:
		return "RESERVED_WORD"
	case TokenInteger:
		return "INTEGER"
	case TokenString:
		return "STRING"
	case TokenSymbol:
		return "SYMBOL"
	default:
		return "UNKNOWN"
	}
}

// ErrorCode classifies an error token
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	ErrIllegalSymbol
	ErrUnterminatedString
	ErrNewlineInString
	ErrUnterminatedComment
)

// String returns the name of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "NONE"
	case ErrIllegalSymbol:
		return "ILLEGAL_SYMBOL"
	case ErrUnterminatedString:
		return "UNTERMINATED_STRING"
	case ErrNewlineInString:
		return "NEWLINE_IN_STRING"
	case ErrUnterminatedComment:
		return "UNTERMINATED_COMMENT"
	default:
		return "UNKNOWN"
	}
}

// Message returns the human-readable diagnosis for the error code
func (c ErrorCode) Message() string {
	switch c {
	case ErrNone:
		return ""
	case ErrIllegalSymbol:
		return "illegal symbol in source file"
	case ErrUnterminatedString:
		return "unexpected eof in string constant"
	case ErrNewlineInString:
		return "new line in string constant"
	case ErrUnterminatedComment:
		return "unexpected eof in comment"
	default:
		return "unknown lexical error"
	}
}

// Token is a classified lexeme with its source position.
// Code is ErrNone unless Type is TokenError.
type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int
	File   string
	Code   ErrorCode
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return fmt.Sprintf("ERROR(%s %q)", t.Code, t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// Is reports whether the token has the given type and value
func (t Token) Is(tt TokenType, value string) bool {
	return t.Type == tt && t.Value == value
}

// IsSymbol reports whether the token is the given single-character symbol
func (t Token) IsSymbol(value string) bool {
	return t.Is(TokenSymbol, value)
}

// IsReserved reports whether the token is the given reserved word
func (t Token) IsReserved(word string) bool {
	return t.Is(TokenReservedWord, word)
}

// Position formats the token location as file:line:column
func (t Token) Position() string {
	return fmt.Sprintf("%s:%d:%d", t.File, t.Line, t.Column)
}

var keywords = map[string]struct{}{
	"class": {}, "constructor": {}, "function": {}, "method": {},
	"field": {}, "static": {}, "var": {},
	"int": {}, "char": {}, "boolean": {}, "void": {},
	"true": {}, "false": {}, "null": {}, "this": {},
	"let": {}, "do": {}, "if": {}, "else": {}, "while": {}, "return": {},
}

const symbols = "{}()[].,;+-*/&|<>=~"

// IsKeyword reports whether s is a Jack reserved word
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsSymbol reports whether r is one of the single-character Jack symbols
func IsSymbol(r rune) bool {
	return r < 128 && strings.ContainsRune(symbols, r)
}
