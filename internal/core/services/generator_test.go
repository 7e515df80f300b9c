package services

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/rules"
)

func TestDiscrepancyGenerator_FaultIsolation(t *testing.T) {
	captureLog(t)

	passing := passingRule("Passing")
	gen := NewDiscrepancyGenerator(NewValidationEngine([]driven.Rule{failingRule("Failing"), passing}))

	docs := []domain.Document{{DocumentID: "doc-1"}, {DocumentID: "doc-2"}}
	discrepancies := slices.Collect(gen.Generate(slices.Values(docs)))

	require.Len(t, discrepancies, 2)
	for i, d := range discrepancies {
		assert.Equal(t, domain.DiscrepancyTypeError, d.DiscrepancyType)
		assert.Equal(t, docs[i].DocumentID+"error", d.DiscrepancyID)
		assert.Equal(t, "boom", d.Details.Error)
	}
	assert.Equal(t, 2, passing.calls, "second document must still be evaluated")
}

func TestDiscrepancyGenerator_DefaultRules(t *testing.T) {
	title := "A"
	doc := domain.Document{
		DocumentID: "doc-1",
		Title:      &title,
		Body:       []domain.DocumentRow{{Header: "North", Body: []float64{2000, 2000, 2000}}},
	}
	gen := NewDiscrepancyGenerator(NewValidationEngine(rules.DefaultRuleSet()))

	discrepancies := slices.Collect(gen.Generate(slices.Values([]domain.Document{doc})))

	require.Len(t, discrepancies, 3)

	assert.Equal(t, "doc-1TitleLength", discrepancies[0].DiscrepancyID)
	assert.Equal(t, domain.LocationTitle, discrepancies[0].Location)

	assert.Equal(t, "doc-1DateRecency", discrepancies[1].DiscrepancyID)
	assert.Equal(t, domain.LocationDateOfCreation, discrepancies[1].Location)

	assert.Equal(t, "doc-1RowSumThreshold", discrepancies[2].DiscrepancyID)
	assert.Equal(t, domain.Location("$.body[0].body[2]"), discrepancies[2].Location)
	assert.Equal(t, "RowSumThreshold", discrepancies[2].Details.Rule)
}

func TestDiscrepancyGenerator_Idempotent(t *testing.T) {
	doc := domain.Document{DocumentID: "doc-1"}
	gen := NewDiscrepancyGenerator(NewValidationEngine(rules.DefaultRuleSet()))

	first := slices.Collect(gen.Generate(slices.Values([]domain.Document{doc})))
	second := slices.Collect(gen.Generate(slices.Values([]domain.Document{doc})))

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestDiscrepancyGenerator_ValidOutcomesDropped(t *testing.T) {
	gen := NewDiscrepancyGenerator(NewValidationEngine([]driven.Rule{passingRule("A"), passingRule("B")}))

	discrepancies := slices.Collect(gen.Generate(slices.Values([]domain.Document{{DocumentID: "x"}})))
	assert.Empty(t, discrepancies)
}
