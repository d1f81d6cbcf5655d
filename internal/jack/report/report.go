// File: report.go
// Title: Diagnostic Reports
// Description: Renders parser diagnoses with a source excerpt, session
//              summaries, token listings, scope tables and run history
//              for the command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package report

import (
	"fmt"
	"strings"

	mdwstringx "github.com/msto63/jackc/foundation/utils/stringx"
	"github.com/msto63/jackc/internal/jack/compiler"
	"github.com/msto63/jackc/internal/jack/lexer"
	"github.com/msto63/jackc/internal/jack/parser"
	"github.com/msto63/jackc/internal/jack/symbols"
	"github.com/msto63/jackc/internal/store"
)

// MaxLexemeWidth caps lexemes shown in reports
const MaxLexemeWidth = 40

// Options configures a Renderer
type Options struct {
	NoColor bool
}

// Renderer formats compiler output
type Renderer struct {
	st styles
}

// New creates a renderer
func New(opts Options) *Renderer {
	if opts.NoColor {
		return &Renderer{st: plainStyles()}
	}
	return &Renderer{st: colorStyles()}
}

// Diagnostic renders a failed result. When source holds the unit text,
// the offending line is shown with a caret under the token.
func (r *Renderer) Diagnostic(res parser.Result, source string) string {
	if res.OK() {
		return ""
	}

	var b strings.Builder
	tok := res.Token

	fmt.Fprintf(&b, "%s %s\n",
		r.st.location.Render(fmt.Sprintf("%s:%d:", tok.File, tok.Line)),
		r.st.message.Render(res.Message()))
	fmt.Fprintf(&b, "  %s %s\n", r.st.muted.Render("kind:  "), r.st.kind.Render(res.Kind.String()))
	fmt.Fprintf(&b, "  %s %s\n", r.st.muted.Render("lexeme:"), r.st.lexeme.Render(quote(tok.Value)))

	if excerpt := r.excerpt(source, tok); excerpt != "" {
		b.WriteString(excerpt)
	}
	return b.String()
}

func (r *Renderer) excerpt(source string, tok lexer.Token) string {
	if mdwstringx.IsBlank(source) {
		return ""
	}
	lines := mdwstringx.SplitLines(source)
	if tok.Line < 1 || tok.Line > len(lines) {
		return ""
	}

	num := fmt.Sprintf("%4d", tok.Line)
	text := lines[tok.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.st.gutter.Render(num+" |"), text)
	if tok.Column > 0 {
		pad := strings.Repeat(" ", tok.Column-1)
		fmt.Fprintf(&b, "%s %s%s\n", r.st.gutter.Render(strings.Repeat(" ", len(num))+" |"), pad, r.st.caret.Render("^"))
	}
	return b.String()
}

// Summary renders one line per compiled unit and a closing total
func (r *Renderer) Summary(s compiler.Summary) string {
	var b strings.Builder

	width := 0
	for _, u := range s.Units {
		if n := len([]rune(u.File)); n > width {
			width = n
		}
	}

	for _, u := range s.Units {
		file := mdwstringx.PadRight(u.File, width, ' ')
		ms := r.st.muted.Render(fmt.Sprintf("%.2fms", float64(u.Duration.Microseconds())/1000))
		if u.Result.OK() {
			fmt.Fprintf(&b, "%s %s  %s\n", r.st.ok.Render("ok  "), file, ms)
			continue
		}
		fmt.Fprintf(&b, "%s %s  %s %s\n",
			r.st.failed.Render("FAIL"), file,
			r.st.kind.Render(u.Result.Kind.String()),
			r.st.muted.Render(fmt.Sprintf("line %d", u.Result.Token.Line)))
	}

	failed := 0
	if !s.OK() {
		failed = 1
	}
	total := fmt.Sprintf("%d unit(s) checked, %d failed", len(s.Units), failed)
	if failed == 0 {
		b.WriteString(r.st.ok.Render(total))
	} else {
		b.WriteString(r.st.failed.Render(total))
	}
	if s.SessionID != "" {
		b.WriteString(r.st.muted.Render(" (session " + s.SessionID + ")"))
	}
	b.WriteString("\n")
	return b.String()
}

// Tokens renders a token listing, one token per row
func (r *Renderer) Tokens(tokens []lexer.Token) string {
	var b strings.Builder
	b.WriteString(r.st.header.Render(row("POS", "TYPE", "VALUE")) + "\n")

	for _, tok := range tokens {
		value := quote(tok.Value)
		if tok.Type == lexer.TokenError {
			value += "  " + r.st.failed.Render(tok.Code.Message())
		}
		b.WriteString(row(fmt.Sprintf("%d:%d", tok.Line, tok.Column), tok.Type.String(), value) + "\n")
	}
	return b.String()
}

// Symbols renders both scopes of a table
func (r *Renderer) Symbols(table *symbols.Table) string {
	return r.Scopes(table.ClassSymbols(), [][]symbols.Symbol{table.SubroutineSymbols()})
}

// Scopes renders the class scope followed by one block per subroutine
func (r *Renderer) Scopes(class []symbols.Symbol, subroutines [][]symbols.Symbol) string {
	var b strings.Builder
	r.scope(&b, "class scope", class)
	for i, syms := range subroutines {
		b.WriteString("\n")
		title := "subroutine scope"
		if len(subroutines) > 1 {
			title = fmt.Sprintf("subroutine scope #%d", i+1)
		}
		r.scope(&b, title, syms)
	}
	return b.String()
}

func (r *Renderer) scope(b *strings.Builder, title string, syms []symbols.Symbol) {
	b.WriteString(r.st.header.Render(title) + "\n")
	if len(syms) == 0 {
		b.WriteString(r.st.muted.Render("  (empty)") + "\n")
		return
	}
	b.WriteString(r.st.muted.Render("  "+row("NAME", "TYPE", "KIND", "INDEX")) + "\n")
	for _, s := range syms {
		b.WriteString("  " + row(s.Name, s.Type, s.Kind.String(), fmt.Sprint(s.Index)) + "\n")
	}
}

// History renders recorded runs, newest first as given
func (r *Renderer) History(runs []*store.Run) string {
	if len(runs) == 0 {
		return r.st.muted.Render("no recorded runs") + "\n"
	}

	var b strings.Builder
	b.WriteString(r.st.header.Render(row("TIME", "STATUS", "FILE", "DETAIL")) + "\n")
	for _, run := range runs {
		status := mdwstringx.PadRight(string(run.Status), colWidth, ' ')
		detail := ""
		if run.Status == store.StatusFailed {
			status = r.st.failed.Render(status)
			detail = fmt.Sprintf("%s at line %d near %s", run.Kind, run.Line, quote(run.Lexeme))
		} else {
			status = r.st.ok.Render(status)
		}
		line := fmt.Sprintf("%s %s %s %s",
			mdwstringx.PadRight(run.Timestamp.Local().Format("2006-01-02 15:04:05"), colWidth, ' '),
			status,
			mdwstringx.PadRight(run.File, colWidth, ' '),
			detail)
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return b.String()
}

const colWidth = 20

func row(cols ...string) string {
	for i := 0; i < len(cols)-1; i++ {
		cols[i] = mdwstringx.PadRight(cols[i], colWidth, ' ')
	}
	return strings.TrimRight(strings.Join(cols, " "), " ")
}

func quote(s string) string {
	return fmt.Sprintf("%q", mdwstringx.Truncate(s, MaxLexemeWidth, "..."))
}
