package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/jackc/foundation/utils/filex"
	"github.com/msto63/jackc/internal/jack/compiler"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir|file>...",
	Short: "Checks Jack source units",
	Long: `Checks the given files and directories. Directories expand to their
source files in lexical order. Checking stops at the first faulty unit,
whose diagnosis is printed; the exit status is then 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var recorder compiler.Recorder
	if cfg.History.Enabled {
		st, err := openStore()
		if err != nil {
			logger.WarnWithErr("Run history unavailable", err)
		} else {
			defer st.Close()
			recorder = st
		}
	}

	c := compiler.New(compiler.Options{
		Logger:    logger,
		Extension: cfg.Compiler.Extension,
		Recorder:  recorder,
	})
	c.Init()
	defer c.Stop()

	summary, err := c.Compile(args...)
	if err != nil {
		return err
	}

	r := renderer()
	out := cmd.OutOrStdout()

	if summary.Failed != nil {
		// The excerpt is optional; an unreadable file still gets a diagnosis
		src, _ := filex.ReadString(summary.Failed.File)
		fmt.Fprintln(out, r.Diagnostic(summary.Failed.Result, src))
	}
	fmt.Fprint(out, r.Summary(summary))

	if summary.Failed != nil {
		return compiler.AsError(summary.Failed.Result)
	}
	return nil
}
