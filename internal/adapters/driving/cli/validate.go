package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [document-id...]",
	Short: "Re-validate stored documents",
	Long: `Runs the rule set against stored documents and stores the discrepancies
found. Without arguments every stored document is validated.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	report, err := pipelineService.Validate(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("failed to validate documents: %w", err)
	}

	printReport(cmd, report)
	return nil
}
