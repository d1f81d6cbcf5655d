package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
	"github.com/msto63/jackc/foundation/utils/filex"
	"github.com/msto63/jackc/internal/jack/compiler"
	"github.com/msto63/jackc/internal/jack/lexer"
	"github.com/msto63/jackc/internal/jack/parser"
	"github.com/msto63/jackc/internal/jack/symbols"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols <file>",
	Short: "Prints the scopes of a file",
	Long: `Parses a Jack source file and prints the class scope followed by
the scope of every subroutine in declaration order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}

// scopeCapture keeps a copy of each subroutine scope before the table
// drops it for the next subroutine.
type scopeCapture struct {
	table   *symbols.Table
	started bool
	scopes  [][]symbols.Symbol
}

func (s *scopeCapture) ResetSubroutine() {
	s.flush()
	s.started = true
	s.table.ResetSubroutine()
}

func (s *scopeCapture) Define(name, typ string, kind symbols.Kind) {
	s.table.Define(name, typ, kind)
}

func (s *scopeCapture) flush() {
	if s.started {
		s.scopes = append(s.scopes, s.table.SubroutineSymbols())
	}
}

func runSymbols(cmd *cobra.Command, args []string) error {
	path := args[0]

	scanner, err := lexer.Open(path)
	if err != nil {
		return err
	}
	defer scanner.Close()

	res, capture, err := collectScopes(scanner, path)
	if err != nil {
		return err
	}

	r := renderer()
	out := cmd.OutOrStdout()

	if !res.OK() {
		src, _ := filex.ReadString(path)
		fmt.Fprint(out, r.Diagnostic(res, src))
		return compiler.AsError(res)
	}

	fmt.Fprint(out, r.Scopes(capture.table.ClassSymbols(), capture.scopes))
	return nil
}

// collectScopes parses one unit and keeps every scope it declares. A read
// failure of the source wins over the parse result.
func collectScopes(scanner *lexer.Scanner, path string) (parser.Result, *scopeCapture, error) {
	capture := &scopeCapture{table: symbols.New()}
	res := parser.New(scanner, parser.Options{
		Logger:   logger,
		Declarer: capture,
		Unit:     path,
	}).Parse()
	capture.flush()

	if err := scanner.Err(); err != nil {
		return res, capture, mdwerror.Wrap(err, "failed to read source file").
			WithCode(mdwerror.CodeIOError).
			WithOperation("symbols").
			WithDetail("file", path)
	}
	return res, capture, nil
}
