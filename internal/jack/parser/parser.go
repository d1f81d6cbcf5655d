// File: parser.go
// Title: Jack Recursive Descent Parser
// Description: Checks one Jack class against the grammar with one token of
//              lookahead. Every nonterminal returns an error; the first
//              fault unwinds the whole parse. Declarations are handed to an
//              optional Declarer as they are recognized.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Trace entry per consumed token

package parser

import (
	"errors"

	mdwlog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/internal/jack/lexer"
	"github.com/msto63/jackc/internal/jack/symbols"
)

// TokenStream is the pull interface between scanner and parser
type TokenStream interface {
	Next() lexer.Token
	Peek() lexer.Token
}

// Declarer receives the declarations found while parsing.
// *symbols.Table satisfies it.
type Declarer interface {
	ResetSubroutine()
	Define(name, typ string, kind symbols.Kind)
}

// Options configures parser behavior
type Options struct {
	Logger   *mdwlog.Logger
	Declarer Declarer
	// Unit names the source in log entries
	Unit string
}

// Parser checks a single compilation unit
type Parser struct {
	tokens TokenStream
	decl   Declarer
	logger *mdwlog.Logger
	unit   string
	trace  bool
}

// New creates a parser reading from ts
func New(ts TokenStream, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		tokens: ts,
		decl:   opts.Declarer,
		logger: opts.Logger.WithField("component", "jack-parser"),
		unit:   opts.Unit,
		trace:  opts.Logger.IsLevelEnabled(mdwlog.LevelTrace),
	}
}

// Parse checks one class declaration. After the closing brace one more
// token is read; only a lexical fault there is reported.
func (p *Parser) Parse() Result {
	p.logger.Debug("Starting unit parse", mdwlog.Fields{"unit": p.unit})

	err := p.parseClass()
	if err == nil {
		if tok := p.tokens.Next(); tok.Type == lexer.TokenError {
			err = fail(LexerError, tok)
		}
	}

	if err != nil {
		var pe *ParseError
		if !errors.As(err, &pe) {
			// Nonterminals only ever return *ParseError
			pe = &ParseError{Kind: SyntaxError}
		}
		p.logger.Debug("Unit parse failed", mdwlog.Fields{
			"unit":   p.unit,
			"kind":   pe.Kind.String(),
			"lexeme": pe.Token.Value,
			"line":   pe.Token.Line,
		})
		return Result{Kind: pe.Kind, Token: pe.Token}
	}

	p.logger.Debug("Unit parse completed", mdwlog.Fields{"unit": p.unit})
	return Result{Kind: None}
}

func fail(kind ErrorKind, tok lexer.Token) error {
	return &ParseError{Kind: kind, Token: tok}
}

// Token access. An error token always becomes LexerError, ahead of any
// syntax diagnosis at the same point.

func (p *Parser) next() (lexer.Token, error) {
	tok := p.tokens.Next()
	if p.trace {
		p.logger.Trace("Token consumed", mdwlog.Fields{
			"type":   tok.Type.String(),
			"lexeme": tok.Value,
			"line":   tok.Line,
		})
	}
	if tok.Type == lexer.TokenError {
		return tok, fail(LexerError, tok)
	}
	return tok, nil
}

func (p *Parser) peek() (lexer.Token, error) {
	tok := p.tokens.Peek()
	if tok.Type == lexer.TokenError {
		return tok, fail(LexerError, tok)
	}
	return tok, nil
}

func (p *Parser) peekSymbol(sym string) (bool, error) {
	tok, err := p.peek()
	return tok.IsSymbol(sym), err
}

func (p *Parser) expectSymbol(sym string, kind ErrorKind) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if !tok.IsSymbol(sym) {
		return fail(kind, tok)
	}
	return nil
}

func (p *Parser) expectIdentifier() (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Type != lexer.TokenIdentifier {
		return tok, fail(IdExpected, tok)
	}
	return tok, nil
}

// expectSemicolon reports SemicolonExpected for any other token. A `}`
// found here is a missing `;`, not a misplaced brace.
func (p *Parser) expectSemicolon() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if !tok.IsSymbol(";") {
		return fail(SemicolonExpected, tok)
	}
	return nil
}

func isPrimitiveType(tok lexer.Token) bool {
	return tok.IsReserved("int") || tok.IsReserved("char") || tok.IsReserved("boolean")
}

// checkType accepts int, char, boolean or a class name, plus void when
// allowed.
func checkType(tok lexer.Token, allowVoid bool) error {
	switch {
	case tok.Type == lexer.TokenIdentifier, isPrimitiveType(tok):
		return nil
	case allowVoid && tok.IsReserved("void"):
		return nil
	default:
		return fail(IllegalType, tok)
	}
}

func (p *Parser) parseType(allowVoid bool) (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	return tok, checkType(tok, allowVoid)
}

// typeInParamList reads a parameter type. A symbol here means the list
// ended early and is reported as CloseParenExpected.
func (p *Parser) typeInParamList() (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Type == lexer.TokenSymbol {
		return tok, fail(CloseParenExpected, tok)
	}
	return tok, checkType(tok, false)
}

func (p *Parser) define(name, typ string, kind symbols.Kind) {
	if p.decl != nil {
		p.decl.Define(name, typ, kind)
	}
}

// class → 'class' Identifier '{' memberDecl* subroutineDecl* '}'
func (p *Parser) parseClass() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if !tok.IsReserved("class") {
		return fail(ClassExpected, tok)
	}

	if _, err := p.expectIdentifier(); err != nil {
		return err
	}
	if err := p.expectSymbol("{", OpenBraceExpected); err != nil {
		return err
	}

	for {
		look, err := p.peek()
		if err != nil {
			return err
		}
		if !look.IsReserved("static") && !look.IsReserved("field") {
			break
		}
		if err := p.parseMemberDecl(); err != nil {
			return err
		}
	}

	for {
		look, err := p.peek()
		if err != nil {
			return err
		}
		if !look.IsReserved("constructor") && !look.IsReserved("function") && !look.IsReserved("method") {
			break
		}
		if err := p.parseSubroutineDecl(); err != nil {
			return err
		}
	}

	return p.expectSymbol("}", CloseBraceExpected)
}

// memberDecl → ('static'|'field') type Identifier (',' Identifier)* ';'
func (p *Parser) parseMemberDecl() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	kind := symbols.KindField
	if tok.IsReserved("static") {
		kind = symbols.KindStatic
	}

	return p.parseNameList(kind)
}

// parseNameList reads type Identifier (',' Identifier)* ';' and defines
// every name with the given kind.
func (p *Parser) parseNameList(kind symbols.Kind) error {
	typ, err := p.parseType(false)
	if err != nil {
		return err
	}

	for {
		name, err := p.expectIdentifier()
		if err != nil {
			return err
		}
		p.define(name.Value, typ.Value, kind)

		more, err := p.peekSymbol(",")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		p.tokens.Next()
	}

	return p.expectSemicolon()
}

// subroutineDecl → ('constructor'|'function'|'method') (void|type)
// Identifier '(' paramList ')' body
func (p *Parser) parseSubroutineDecl() error {
	if _, err := p.next(); err != nil {
		return err
	}
	if p.decl != nil {
		p.decl.ResetSubroutine()
	}

	if _, err := p.parseType(true); err != nil {
		return err
	}
	if _, err := p.expectIdentifier(); err != nil {
		return err
	}
	if err := p.expectSymbol("(", OpenParenExpected); err != nil {
		return err
	}
	if err := p.parseParamList(); err != nil {
		return err
	}
	if err := p.expectSymbol(")", CloseParenExpected); err != nil {
		return err
	}

	return p.parseBody()
}

// paramList → (type Identifier (',' type Identifier)*)?
func (p *Parser) parseParamList() error {
	empty, err := p.peekSymbol(")")
	if err != nil || empty {
		return err
	}

	for {
		typ, err := p.typeInParamList()
		if err != nil {
			return err
		}
		name, err := p.expectIdentifier()
		if err != nil {
			return err
		}
		p.define(name.Value, typ.Value, symbols.KindArg)

		more, err := p.peekSymbol(",")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		p.tokens.Next()
	}
}

// body → '{' varDecl* statement* '}'
func (p *Parser) parseBody() error {
	if err := p.expectSymbol("{", OpenBraceExpected); err != nil {
		return err
	}

	for {
		look, err := p.peek()
		if err != nil {
			return err
		}
		if !look.IsReserved("var") {
			break
		}
		p.tokens.Next()
		if err := p.parseNameList(symbols.KindVar); err != nil {
			return err
		}
	}

	return p.parseBlockTail()
}

// parseBlockTail reads statement* '}'
func (p *Parser) parseBlockTail() error {
	if err := p.parseStatements(); err != nil {
		return err
	}
	return p.expectSymbol("}", CloseBraceExpected)
}

// statement* up to, not including, the closing '}'
func (p *Parser) parseStatements() error {
	for {
		look, err := p.peek()
		if err != nil {
			return err
		}
		if look.IsSymbol("}") {
			return nil
		}

		switch {
		case look.IsReserved("let"):
			err = p.parseLet()
		case look.IsReserved("if"):
			err = p.parseIf()
		case look.IsReserved("while"):
			err = p.parseWhile()
		case look.IsReserved("do"):
			err = p.parseDo()
		case look.IsReserved("return"):
			err = p.parseReturn()
		default:
			return fail(SyntaxError, look)
		}
		if err != nil {
			return err
		}
	}
}

// let → 'let' Identifier ('[' expr ']')? '=' expr ';'
func (p *Parser) parseLet() error {
	p.tokens.Next()

	if _, err := p.expectIdentifier(); err != nil {
		return err
	}

	indexed, err := p.peekSymbol("[")
	if err != nil {
		return err
	}
	if indexed {
		p.tokens.Next()
		if err := p.parseExpr(); err != nil {
			return err
		}
		if err := p.expectSymbol("]", CloseBracketExpected); err != nil {
			return err
		}
	}

	if err := p.expectSymbol("=", EqualExpected); err != nil {
		return err
	}
	if err := p.parseExpr(); err != nil {
		return err
	}
	return p.expectSemicolon()
}

// parseCondBlock reads '(' expr ')' '{' statement* '}'
func (p *Parser) parseCondBlock() error {
	if err := p.expectSymbol("(", OpenParenExpected); err != nil {
		return err
	}
	if err := p.parseExpr(); err != nil {
		return err
	}
	if err := p.expectSymbol(")", CloseParenExpected); err != nil {
		return err
	}
	if err := p.expectSymbol("{", OpenBraceExpected); err != nil {
		return err
	}
	return p.parseBlockTail()
}

// if → 'if' '(' expr ')' '{' statement* '}' ('else' '{' statement* '}')?
func (p *Parser) parseIf() error {
	p.tokens.Next()

	if err := p.parseCondBlock(); err != nil {
		return err
	}

	look, err := p.peek()
	if err != nil {
		return err
	}
	if !look.IsReserved("else") {
		return nil
	}
	p.tokens.Next()

	if err := p.expectSymbol("{", OpenBraceExpected); err != nil {
		return err
	}
	return p.parseBlockTail()
}

// while → 'while' '(' expr ')' '{' statement* '}'
func (p *Parser) parseWhile() error {
	p.tokens.Next()
	return p.parseCondBlock()
}

// do → 'do' Identifier ('.' Identifier)? '(' exprList ')' ';'
func (p *Parser) parseDo() error {
	p.tokens.Next()

	if _, err := p.expectIdentifier(); err != nil {
		return err
	}
	if err := p.parseCallRest(); err != nil {
		return err
	}
	return p.expectSemicolon()
}

// return → 'return' expr? ';'
func (p *Parser) parseReturn() error {
	p.tokens.Next()

	bare, err := p.peekSymbol(";")
	if err != nil {
		return err
	}
	if !bare {
		if err := p.parseExpr(); err != nil {
			return err
		}
	}
	return p.expectSemicolon()
}

// parseCallRest reads ('.' Identifier)? '(' exprList ')' after the first
// identifier of a subroutine call.
func (p *Parser) parseCallRest() error {
	qualified, err := p.peekSymbol(".")
	if err != nil {
		return err
	}
	if qualified {
		p.tokens.Next()
		if _, err := p.expectIdentifier(); err != nil {
			return err
		}
	}

	if err := p.expectSymbol("(", OpenParenExpected); err != nil {
		return err
	}
	if err := p.parseExprList(); err != nil {
		return err
	}
	return p.expectSymbol(")", CloseParenExpected)
}

// exprList → (expr (',' expr)*)?
func (p *Parser) parseExprList() error {
	empty, err := p.peekSymbol(")")
	if err != nil || empty {
		return err
	}

	for {
		if err := p.parseExpr(); err != nil {
			return err
		}
		more, err := p.peekSymbol(",")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		p.tokens.Next()
	}
}

func isBinaryOp(tok lexer.Token) bool {
	if tok.Type != lexer.TokenSymbol {
		return false
	}
	switch tok.Value {
	case "+", "-", "*", "/", "&", "|", "<", ">", "=":
		return true
	default:
		return false
	}
}

// expr → term (binOp term)*
func (p *Parser) parseExpr() error {
	if err := p.parseTerm(); err != nil {
		return err
	}

	for {
		look, err := p.peek()
		if err != nil {
			return err
		}
		if !isBinaryOp(look) {
			return nil
		}
		p.tokens.Next()
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
}

// term → Integer | String | true | false | null | this | '(' expr ')' |
// ('-'|'~') term | Identifier ('[' expr ']' | callRest)?
func (p *Parser) parseTerm() error {
	tok, err := p.next()
	if err != nil {
		return err
	}

	switch tok.Type {
	case lexer.TokenInteger, lexer.TokenString:
		return nil

	case lexer.TokenReservedWord:
		switch tok.Value {
		case "true", "false", "null", "this":
			return nil
		}
		return fail(SyntaxError, tok)

	case lexer.TokenSymbol:
		switch tok.Value {
		case "(":
			if err := p.parseExpr(); err != nil {
				return err
			}
			return p.expectSymbol(")", CloseParenExpected)
		case "-", "~":
			return p.parseTerm()
		}
		return fail(SyntaxError, tok)

	case lexer.TokenIdentifier:
		look, err := p.peek()
		if err != nil {
			return err
		}
		switch {
		case look.IsSymbol("["):
			p.tokens.Next()
			if err := p.parseExpr(); err != nil {
				return err
			}
			return p.expectSymbol("]", CloseBracketExpected)
		case look.IsSymbol("("), look.IsSymbol("."):
			return p.parseCallRest()
		}
		return nil
	}

	return fail(SyntaxError, tok)
}
