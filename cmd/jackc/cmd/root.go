package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/jackc/foundation/core/config"
	mdwerror "github.com/msto63/jackc/foundation/core/error"
	mdwlog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/internal/jack/report"
	"github.com/msto63/jackc/internal/store"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jackc",
	Short: "jackc - Jack compiler front end",
	Long: `jackc checks Jack source units for lexical and syntactic faults.

Each unit is scanned and parsed; the first fault stops the unit and is
reported with its kind, position and offending lexeme. Declarations are
collected into class and subroutine scopes.

Commands:
  check    - check files or directories
  tokens   - print the token stream of a file
  symbols  - print the scopes of a file
  history  - list recorded runs`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Source faults are rendered by the
// commands themselves; every other error is printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && ExitCode(err) != 1 {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $JACKC_CONFIG, ./configs/jackc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level := cfg.LogLevel()
	if verbose {
		level = mdwlog.LevelDebug
	}
	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:         level,
		Format:        cfg.LogFormat(),
		Output:        os.Stderr,
		Name:          "jackc",
		EnableCaller:  cfg.General.LogCaller,
		DisableColors: noColor || !cfg.Output.Color,
	})
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"path":    cfg.FilePath(),
		"history": cfg.History.Enabled,
	})
	return nil
}

func renderer() *report.Renderer {
	return report.New(report.Options{NoColor: noColor || !cfg.Output.Color})
}

func openStore() (*store.SQLiteRunStore, error) {
	return store.Open(store.SQLiteRunConfig{
		Path:        cfg.History.Path,
		BusyTimeout: cfg.History.BusyTimeout.Duration,
	})
}

// printError writes err on one line. With --verbose a structured error
// is written with its code, operation and details.
func printError(w io.Writer, err error) {
	var mdwErr *mdwerror.Error
	if verbose && errors.As(err, &mdwErr) {
		fmt.Fprintln(w, mdwErr.String())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
