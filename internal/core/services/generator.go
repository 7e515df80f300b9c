package services

import (
	"iter"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

// DiscrepancyGenerator drives a ValidationEngine over a Document sequence.
type DiscrepancyGenerator struct {
	engine *ValidationEngine
}

// NewDiscrepancyGenerator creates a generator using the given engine.
func NewDiscrepancyGenerator(engine *ValidationEngine) *DiscrepancyGenerator {
	return &DiscrepancyGenerator{engine: engine}
}

// Generate yields one Discrepancy per non-valid outcome of every
// (document, rule) pair. Valid outcomes are dropped.
func (g *DiscrepancyGenerator) Generate(docs iter.Seq[domain.Document]) iter.Seq[domain.Discrepancy] {
	return func(yield func(domain.Discrepancy) bool) {
		for doc := range docs {
			for _, outcome := range g.engine.Evaluate(&doc) {
				d, ok := domain.NewDiscrepancy(outcome)
				if !ok {
					logger.Debug("Document %s passed %s", doc.DocumentID, outcome.Info.Rule)
					continue
				}
				if !yield(d) {
					return
				}
			}
		}
	}
}
