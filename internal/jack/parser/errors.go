// File: errors.go
// Title: Jack Parse Diagnostics
// Description: The error taxonomy of the Jack front end and the result
//              type returned for a parsed unit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	"github.com/msto63/jackc/internal/jack/lexer"
)

// ErrorKind classifies the first fault found in a unit
type ErrorKind int

const (
	None ErrorKind = iota
	LexerError
	ClassExpected
	IdExpected
	OpenBraceExpected
	CloseBraceExpected
	IllegalType
	SemicolonExpected
	OpenParenExpected
	CloseParenExpected
	CloseBracketExpected
	EqualExpected
	SyntaxError
)

// String returns the name of the kind
func (k ErrorKind) String() string {
	switch k {
	case None:
		return "None"
	case LexerError:
		return "LexerError"
	case ClassExpected:
		return "ClassExpected"
	case IdExpected:
		return "IdExpected"
	case OpenBraceExpected:
		return "OpenBraceExpected"
	case CloseBraceExpected:
		return "CloseBraceExpected"
	case IllegalType:
		return "IllegalType"
	case SemicolonExpected:
		return "SemicolonExpected"
	case OpenParenExpected:
		return "OpenParenExpected"
	case CloseParenExpected:
		return "CloseParenExpected"
	case CloseBracketExpected:
		return "CloseBracketExpected"
	case EqualExpected:
		return "EqualExpected"
	case SyntaxError:
		return "SyntaxError"
	default:
		return "Unknown"
	}
}

// Message returns the diagnosis shown to the user
func (k ErrorKind) Message() string {
	switch k {
	case None:
		return "ok"
	case LexerError:
		return "lexer error"
	case ClassExpected:
		return "class expected"
	case IdExpected:
		return "identifier expected"
	case OpenBraceExpected:
		return "{ expected"
	case CloseBraceExpected:
		return "} expected"
	case IllegalType:
		return "a type must be int, char, boolean, or identifier"
	case SemicolonExpected:
		return "; expected"
	case OpenParenExpected:
		return "( expected"
	case CloseParenExpected:
		return ") expected"
	case CloseBracketExpected:
		return "] expected"
	case EqualExpected:
		return "= expected"
	case SyntaxError:
		return "syntax error"
	default:
		return "unknown error"
	}
}

// ParseError is the first fault of a unit and the token it was found at
type ParseError struct {
	Kind  ErrorKind
	Token lexer.Token
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s (near %q)", e.Token.File, e.Token.Line, describe(e.Kind, e.Token), e.Token.Value)
}

// Result is the outcome of parsing one unit. Kind None means success.
type Result struct {
	Kind  ErrorKind
	Token lexer.Token
}

// OK reports whether the unit parsed without fault
func (r Result) OK() bool {
	return r.Kind == None
}

// Err returns the fault as a *ParseError, or nil on success
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ParseError{Kind: r.Kind, Token: r.Token}
}

// Message returns the diagnosis. For lexer errors it names the lexical fault.
func (r Result) Message() string {
	return describe(r.Kind, r.Token)
}

func describe(kind ErrorKind, tok lexer.Token) string {
	if kind == LexerError && tok.Code != lexer.ErrNone {
		return kind.Message() + ": " + tok.Code.Message()
	}
	return kind.Message()
}
