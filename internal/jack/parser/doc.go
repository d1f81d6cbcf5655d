// Package parser implements the Jack syntax checker.
//
// The parser walks one class with a recursive-descent function per
// nonterminal and a single token of lookahead. It builds no tree: a unit
// either satisfies the grammar or yields the first fault as a Result
// holding an ErrorKind and the token it was found at.
//
// Most faults are "expected X, got Y" checks. Two call sites override the
// plain check with a more specific kind:
//
//   - a missing ';' is always SemicolonExpected, even when '}' is found
//   - a symbol where a parameter type is expected is CloseParenExpected
//
// An unexpected token at statement position is SyntaxError. Error tokens
// from the scanner always win as LexerError.
//
// Usage:
//
//	table := symbols.New()
//	res := parser.New(scanner, parser.Options{Declarer: table}).Parse()
//	if !res.OK() {
//		fmt.Printf("%s:%d: %s\n", res.Token.File, res.Token.Line, res.Message())
//	}
package parser
