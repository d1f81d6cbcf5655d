// Package lexer implements the Jack scanner.
//
// A Scanner reads one source unit and hands out tokens through Next and
// Peek. Peek fills a single cached lookahead slot and the following Next
// drains it, so at most one token of lookahead exists at any time.
//
// Lexical faults are not Go errors. They surface as tokens of type
// TokenError whose Code names the fault:
//
//	ErrIllegalSymbol        a character outside the language, one character consumed
//	ErrUnterminatedString   end of input inside "..." (line of the opening quote)
//	ErrNewlineInString      newline inside "..." (line of the opening quote)
//	ErrUnterminatedComment  end of input inside /* ... */ (line where input ended)
//
// Usage:
//
//	s, err := lexer.Open("Main.jack")
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	for tok := s.Next(); tok.Type != lexer.TokenEOF; tok = s.Next() {
//		if tok.Type == lexer.TokenError {
//			break
//		}
//		fmt.Println(tok)
//	}
package lexer
