package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/jackc/internal/store"
)

var (
	historyLimit   int
	historyFailed  bool
	historySession string
	historyPrune   time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists recorded runs",
	Long: `Lists the unit compilations recorded by "jackc check", newest first.
With --prune, runs older than the given age are deleted instead.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs (0 = all)")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "only failed runs")
	historyCmd.Flags().StringVar(&historySession, "session", "", "only runs of this session")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete runs older than this age (e.g. 720h)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !cfg.History.Enabled {
		fmt.Fprintln(out, "Run history is disabled (history.enabled = false).")
		return nil
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if historyPrune > 0 {
		n, err := st.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d run(s) deleted.\n", n)
		return nil
	}

	filter := store.RunFilter{
		SessionID: historySession,
		Limit:     historyLimit,
	}
	if historyFailed {
		filter.Status = store.StatusFailed
	}

	runs, err := st.Query(ctx, filter)
	if err != nil {
		return err
	}

	fmt.Fprint(out, renderer().History(runs))
	return nil
}
