package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discrepancy-finder/internal/connectors/filesystem"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Ingest a directory and keep processing new tables",
	Long: `Runs the pipeline over the directory once, then watches it and runs the
pipeline again for every table file that is created or written, until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

// watchDebounce is a flag for the watch command.
var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", filesystem.DefaultDebounce, "Wait this long for further changes before processing")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	directory := filesystem.ResolvePath(args[0])
	ctx := cmd.Context()

	report, err := pipelineService.Run(ctx, directory)
	if err != nil {
		return fmt.Errorf("failed to run pipeline: %w", err)
	}
	printReport(cmd, report)

	batches, err := filesystem.NewWatcher(directory, watchDebounce).Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", directory, err)
	}

	cmd.Printf("\nWatching %s (Ctrl+C to stop)\n", directory)
	for batch := range batches {
		logger.Info("Detected %d changed file(s)", len(batch))
		report, err := pipelineService.RunFiles(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			logger.Error("Pipeline run failed: %v", err)
			continue
		}
		cmd.Println()
		printReport(cmd, report)
	}

	cmd.Println("Stopped watching.")
	return nil
}
