package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/discrepancy-finder/internal/connectors/filesystem"
	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/services"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
	"github.com/custodia-labs/discrepancy-finder/internal/normalisers/table"
	"github.com/custodia-labs/discrepancy-finder/internal/rules"
)

const testTable = `<table id="%s">
	<caption>%s</caption>
	<thead><tr><th>Region</th><th>Q1</th><th>Q2</th><th>Q3</th></tr></thead>
	<tbody><tr><td>North</td><td>2000</td><td>2000</td><td>2000</td></tr></tbody>
	<tfoot><tr><td>Creation: 15Jan23 Germany</td></tr></tfoot>
</table>`

// setupTestServices installs services backed by memory stores holding one
// document and one discrepancy. The returned function restores the previous
// state.
func setupTestServices() func() {
	docStore := memory.NewDocumentStore()
	discrepancyStore := memory.NewDiscrepancyStore()
	ctx := context.Background()

	title := "Test Document 1"
	country := "Germany"
	_, _ = docStore.SaveDocuments(ctx, []domain.Document{{
		DocumentID:        "doc-1",
		Title:             &title,
		Header:            []string{"Q1", "Q2"},
		Body:              []domain.DocumentRow{{Header: "North", Body: []float64{1200, 0.25}}},
		CountryOfCreation: &country,
	}})
	_, _ = discrepancyStore.SaveDiscrepancies(ctx, []domain.Discrepancy{{
		DiscrepancyID:   "doc-1DateRecency",
		DocumentID:      "doc-1",
		DiscrepancyType: rules.DateRecencyName,
		Location:        domain.LocationDateOfCreation,
		Details: domain.OutcomeInfo{
			DocumentID:     "doc-1",
			Rule:           rules.DateRecencyName,
			RuleParameters: map[string]any{"max_date": "2023-01-01T00:00:00Z"},
			Location:       domain.LocationDateOfCreation,
		},
	}})

	ruleList := rules.DefaultRuleSet()
	SetServices(&Services{
		Pipeline:      services.NewPipeline(filesystem.Factory{}, table.New(), ruleList, docStore, discrepancyStore),
		Documents:     services.NewDocumentService(docStore),
		Discrepancies: services.NewDiscrepancyService(discrepancyStore),
		Rules:         ruleList,
		RulesSource:   "built-in defaults",
	})

	return func() {
		SetServices(nil)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeTableFile writes a table file into dir.
func writeTableFile(t *testing.T, dir, name, id, caption string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(testTable, id, caption)), 0644))
	return path
}

// captureLog redirects logger output for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

// emptyDocuments is a document service with nothing stored.
type emptyDocuments struct{}

func (emptyDocuments) List(context.Context) ([]domain.Document, error) { return nil, nil }

func (emptyDocuments) Get(context.Context, string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
