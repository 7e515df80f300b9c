package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Inspect stored documents",
	Long:  `List stored documents or show one document in full.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [document-id]",
	Short: "Show a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

func init() {
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents stored.")
		return nil
	}

	rows := make([][]string, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		rows = append(rows, []string{
			doc.DocumentID,
			orEmpty(doc.Title),
			strconv.Itoa(len(doc.Body)),
			orEmpty(doc.CountryOfCreation),
			formatDate(doc.DateOfCreation),
		})
	}

	headers := []string{"ID", "TITLE", "ROWS", "COUNTRY", "CREATED"}
	if err := writeTable(cmd.OutOrStdout(), headers, rows); err != nil {
		return err
	}

	cmd.Printf("\nTotal: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Println(title(cmd.OutOrStdout(), "Document: "+doc.DocumentID))
	cmd.Println()
	cmd.Printf("  Title:    %s\n", orEmpty(doc.Title))
	cmd.Printf("  Country:  %s\n", orEmpty(doc.CountryOfCreation))
	cmd.Printf("  Created:  %s\n", formatDate(doc.DateOfCreation))
	cmd.Printf("  Footer:   %s\n", orEmpty(doc.Footer))

	if len(doc.Header) == 0 && len(doc.Body) == 0 {
		return nil
	}

	headers := append([]string{""}, doc.Header...)
	rows := make([][]string, 0, len(doc.Body))
	for _, row := range doc.Body {
		rows = append(rows, append([]string{row.Header}, formatValues(row.Body)...))
	}

	cmd.Println()
	return writeTable(cmd.OutOrStdout(), headers, rows)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return emptyValue
	}
	return t.Format(time.DateOnly)
}

func formatValues(values []float64) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return out
}
