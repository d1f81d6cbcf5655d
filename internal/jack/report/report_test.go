// File: report_test.go
// Title: Report Rendering Tests
// Description: Tests for diagnostic, summary, token, scope and history
//              rendering with colors disabled.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/msto63/jackc/internal/jack/compiler"
	"github.com/msto63/jackc/internal/jack/lexer"
	"github.com/msto63/jackc/internal/jack/parser"
	"github.com/msto63/jackc/internal/jack/symbols"
	"github.com/msto63/jackc/internal/store"
)

func plain() *Renderer {
	return New(Options{NoColor: true})
}

func TestDiagnostic(t *testing.T) {
	src := "class A {\n  field int x\n}\n"
	res := parser.Result{
		Kind:  parser.SemicolonExpected,
		Token: lexer.Token{Type: lexer.TokenSymbol, Value: "}", Line: 3, Column: 1, File: "A.jack"},
	}

	out := plain().Diagnostic(res, src)

	for _, want := range []string{
		"A.jack:3: ; expected",
		"kind:   SemicolonExpected",
		`lexeme: "}"`,
		"   3 | }",
		"     | ^",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestDiagnostic_Variants(t *testing.T) {
	tests := []struct {
		name    string
		res     parser.Result
		source  string
		want    []string
		notWant []string
	}{
		{
			name: "success renders nothing",
			res:  parser.Result{},
		},
		{
			name: "lexer error names the fault",
			res: parser.Result{
				Kind:  parser.LexerError,
				Token: lexer.Token{Type: lexer.TokenError, Value: `"abc`, Line: 1, Column: 5, File: "B.jack", Code: lexer.ErrUnterminatedString},
			},
			want: []string{"B.jack:1: lexer error: ", `lexeme: "\"abc"`},
		},
		{
			name: "line outside source has no excerpt",
			res: parser.Result{
				Kind:  parser.CloseBraceExpected,
				Token: lexer.Token{Type: lexer.TokenEOF, Value: "EOF", Line: 9, Column: 1, File: "C.jack"},
			},
			source:  "class C {\n",
			want:    []string{"C.jack:9: } expected"},
			notWant: []string{" | "},
		},
		{
			name: "long lexeme is truncated",
			res: parser.Result{
				Kind:  parser.SyntaxError,
				Token: lexer.Token{Type: lexer.TokenIdentifier, Value: strings.Repeat("x", 60), Line: 1, File: "D.jack"},
			},
			want: []string{strings.Repeat("x", MaxLexemeWidth-3) + "..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := plain().Diagnostic(tt.res, tt.source)
			if len(tt.want) == 0 && len(tt.notWant) == 0 && out != "" {
				t.Errorf("expected empty output, got %q", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q in:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("unexpected %q in:\n%s", w, out)
				}
			}
		})
	}
}

func TestSummary(t *testing.T) {
	units := []compiler.UnitResult{
		{File: "A.jack", Duration: 1500 * time.Microsecond},
		{File: "Long.jack", Result: parser.Result{
			Kind:  parser.IdExpected,
			Token: lexer.Token{Value: "}", Line: 7},
		}},
	}
	s := compiler.Summary{SessionID: "sess-1", Units: units, Failed: &units[1]}

	out := plain().Summary(s)

	for _, want := range []string{
		"ok   A.jack     1.50ms",
		"FAIL Long.jack  IdExpected line 7",
		"2 unit(s) checked, 1 failed (session sess-1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	ok := plain().Summary(compiler.Summary{Units: units[:1]})
	if !strings.Contains(ok, "1 unit(s) checked, 0 failed\n") {
		t.Errorf("unexpected summary:\n%s", ok)
	}
}

func TestTokens(t *testing.T) {
	tokens, _ := lexer.TokenizeInput("T.jack", "let x = 1; #")

	out := plain().Tokens(tokens)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if len(lines) != len(tokens)+1 {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(tokens)+1, out)
	}
	if !strings.HasPrefix(lines[0], "POS") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "1:1") || !strings.Contains(lines[1], `"let"`) {
		t.Errorf("first row = %q", lines[1])
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, `"#"`) || !strings.Contains(last, lexer.ErrIllegalSymbol.Message()) {
		t.Errorf("error row = %q", last)
	}
}

func TestSymbols(t *testing.T) {
	table := symbols.New()
	table.Define("count", "int", symbols.KindStatic)
	table.Define("items", "Array", symbols.KindField)

	out := plain().Symbols(table)

	for _, want := range []string{"class scope", "count", "Array", "field", "subroutine scope", "(empty)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestHistory(t *testing.T) {
	if out := plain().History(nil); !strings.Contains(out, "no recorded runs") {
		t.Errorf("unexpected empty history: %q", out)
	}

	runs := []*store.Run{
		{Timestamp: time.Now(), File: "B.jack", Status: store.StatusFailed, Kind: "SemicolonExpected", Lexeme: "}", Line: 4},
		{Timestamp: time.Now(), File: "A.jack", Status: store.StatusOK},
	}
	out := plain().History(runs)

	if !strings.Contains(out, `SemicolonExpected at line 4 near "}"`) {
		t.Errorf("missing failure detail in:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasSuffix(line, " ") {
			t.Errorf("trailing space in %q", line)
		}
	}
}

func TestScopes(t *testing.T) {
	class := []symbols.Symbol{{Name: "x", Type: "int", Kind: symbols.KindField, Index: 0}}
	subs := [][]symbols.Symbol{
		{{Name: "a", Type: "int", Kind: symbols.KindArg, Index: 0}},
		nil,
	}

	out := plain().Scopes(class, subs)

	for _, want := range []string{"subroutine scope #1", "argument", "subroutine scope #2", "(empty)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
