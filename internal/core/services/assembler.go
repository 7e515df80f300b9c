package services

import (
	"context"
	"iter"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

// DocumentAssembler composes a Source with a Normaliser into a lazy
// Document sequence. A file that fails to parse is logged and skipped.
type DocumentAssembler struct {
	normaliser driven.Normaliser
	onFailure  func(uri string, err error)
}

// NewDocumentAssembler creates an assembler using the given normaliser.
func NewDocumentAssembler(normaliser driven.Normaliser) *DocumentAssembler {
	return &DocumentAssembler{normaliser: normaliser}
}

// OnFailure sets a hook called once for every skipped file.
func (a *DocumentAssembler) OnFailure(fn func(uri string, err error)) {
	a.onFailure = fn
}

// Assemble yields one Document per parseable file of the source.
// The sequence stops early when ctx is cancelled.
func (a *DocumentAssembler) Assemble(ctx context.Context, src driven.Source) iter.Seq[domain.Document] {
	return func(yield func(domain.Document) bool) {
		for raw, err := range src.Documents(ctx) {
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				a.fail(uriOf(raw), err)
				continue
			}

			doc, err := protect(func() (*domain.Document, error) {
				return a.normaliser.Normalise(ctx, raw)
			})
			if err != nil {
				a.fail(uriOf(raw), err)
				continue
			}
			if doc == nil {
				continue
			}

			logger.Debug("Parsed document %s from %s", doc.DocumentID, raw.URI)
			if !yield(*doc) {
				return
			}
		}
	}
}

func (a *DocumentAssembler) fail(uri string, err error) {
	logger.Warn("Failed to parse %s: %v", uri, err)
	if a.onFailure != nil {
		a.onFailure(uri, err)
	}
}

func uriOf(raw *domain.RawDocument) string {
	if raw == nil {
		return "<unknown>"
	}
	return raw.URI
}
