package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
	mdwlog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/internal/jack/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Prints the token stream of a file",
	Long: `Scans a Jack source file and prints one token per line with its
position and type. Scanning stops at the first lexical fault.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	scanner, err := lexer.Open(args[0])
	if err != nil {
		return err
	}
	defer scanner.Close()

	tokens, lexErr := scanner.Tokenize()
	if err := scanner.Err(); err != nil {
		return mdwerror.Wrap(err, "failed to read source file").
			WithCode(mdwerror.CodeIOError).
			WithOperation("tokens").
			WithDetail("file", args[0])
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer().Tokens(tokens))
	logger.Debug("Tokens listed", mdwlog.Fields{"file": args[0], "count": len(tokens)})

	if lexErr != nil {
		return mdwerror.Wrap(lexErr, "lexical fault").
			WithCode(mdwerror.CodeLexical).
			WithOperation("tokens")
	}
	return nil
}
