package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

var discrepanciesCmd = &cobra.Command{
	Use:   "discrepancies [document-id]",
	Short: "List stored discrepancies",
	Long: `Lists the discrepancies recorded for one document, or for every document
when no id is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiscrepancies,
}

// discrepanciesJSON is a flag for the discrepancies command.
var discrepanciesJSON bool

func init() {
	discrepanciesCmd.Flags().BoolVar(&discrepanciesJSON, "json", false, "Print discrepancies as JSON")
	rootCmd.AddCommand(discrepanciesCmd)
}

func runDiscrepancies(cmd *cobra.Command, args []string) error {
	if discrepancyService == nil {
		return errors.New("discrepancy service not configured")
	}

	var documentID string
	if len(args) == 1 {
		documentID = args[0]
	}

	items, err := discrepancyService.List(cmd.Context(), documentID)
	if err != nil {
		return fmt.Errorf("failed to list discrepancies: %w", err)
	}

	if discrepanciesJSON {
		if items == nil {
			items = []domain.Discrepancy{}
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode discrepancies: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if len(items) == 0 {
		if documentID != "" {
			cmd.Printf("No discrepancies found for document: %s\n", documentID)
		} else {
			cmd.Println("No discrepancies found.")
		}
		return nil
	}

	out := cmd.OutOrStdout()
	styles := DefaultStyles()
	rows := make([][]string, 0, len(items))
	for i := range items {
		d := &items[i]
		style := styles.Warning
		if d.DiscrepancyType == domain.DiscrepancyTypeError {
			style = styles.Error
		}
		rows = append(rows, []string{
			d.DiscrepancyID,
			d.DocumentID,
			paint(out, style, d.DiscrepancyType),
			locationOrEmpty(d.Location),
			describe(d),
		})
	}

	headers := []string{"ID", "DOCUMENT", "TYPE", "LOCATION", "DETAILS"}
	if err := writeTable(out, headers, rows); err != nil {
		return err
	}

	cmd.Printf("\nTotal: %d discrepancies\n", len(items))
	return nil
}

// describe summarises a discrepancy: the error message for rule failures,
// otherwise the rule and its parameters.
func describe(d *domain.Discrepancy) string {
	if d.Details.Error != "" {
		return d.Details.Error
	}
	params := formatParams(d.Details.RuleParameters)
	if params == "" {
		return d.Details.Rule
	}
	return d.Details.Rule + " " + params
}

func locationOrEmpty(loc domain.Location) string {
	if loc == "" {
		return emptyValue
	}
	return loc.String()
}
