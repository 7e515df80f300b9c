package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driving"
)

var runCmd = &cobra.Command{
	Use:   "run [directory]",
	Short: "Ingest and validate a directory of tables",
	Long: `Parses every .html table file in the directory, stores the documents,
validates them against the rule set and stores the discrepancies found.
Files that cannot be parsed are skipped and reported as warnings.

Only the top level of the directory is read. Hidden files such as
.draft.html are ignored, and the extension match is case-sensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	report, err := pipelineService.Run(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to run pipeline: %w", err)
	}

	printReport(cmd, report)
	return nil
}

// printReport writes a run summary.
func printReport(cmd *cobra.Command, report *driving.RunReport) {
	cmd.Println(title(cmd.OutOrStdout(), "Run "+report.RunID))
	if report.FilesFailed > 0 || report.DocumentsParsed > 0 {
		cmd.Printf("  Files failed:         %d\n", report.FilesFailed)
		cmd.Printf("  Documents parsed:     %d\n", report.DocumentsParsed)
		cmd.Printf("  Documents saved:      %d\n", report.DocumentsSaved)
	}
	cmd.Printf("  Documents validated:  %d\n", report.DocumentsValidated)
	cmd.Printf("  Discrepancies found:  %d\n", report.DiscrepanciesFound)
	cmd.Printf("  Discrepancies saved:  %d\n", report.DiscrepanciesSaved)

	if len(report.ByType) == 0 {
		if report.DocumentsValidated > 0 {
			cmd.Println(paint(cmd.OutOrStdout(), DefaultStyles().Success, "\n  All documents passed."))
		}
		return
	}

	types := make([]string, 0, len(report.ByType))
	for kind := range report.ByType {
		types = append(types, kind)
	}
	sort.Strings(types)

	cmd.Println("\n  By type:")
	for _, kind := range types {
		cmd.Printf("    %s: %d\n", kind, report.ByType[kind])
	}
}
