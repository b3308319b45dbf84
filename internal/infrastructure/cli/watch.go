package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/reqqual/reqqual/internal/infrastructure/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the analysis whenever the input CSV changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		rerun := func() {
			if err := runAnalysis(cmd.Context(), analyzeOpts); err != nil {
				fmt.Printf("analysis failed: %v\n", err)
			}
		}

		// Analyze once up front so the watcher starts from fresh reports.
		rerun()

		fmt.Printf("Watching %s (Ctrl+C to stop)\n", analyzeOpts.input)
		watcher := watch.NewFileWatcher(analyzeOpts.input, watchDebounce, rerun)
		if err := watcher.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVarP(&analyzeOpts.input, "input", "i", "requirements.csv", "path to the input CSV")
	watchCmd.Flags().StringVarP(&analyzeOpts.outDir, "out-dir", "o", "out", "output directory for reports")
	watchCmd.Flags().StringVar(&analyzeOpts.configPath, "config", "reqqual.yaml", "path to the config file")
	watchCmd.Flags().BoolVar(&analyzeOpts.enableAI, "enable-ai", false, "enable advisory AI suggestions")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "debounce window for file changes")
	RootCmd.AddCommand(watchCmd)
}
