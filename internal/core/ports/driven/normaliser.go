package driven

import (
	"context"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// Normaliser transforms a raw file into a canonical Document.
type Normaliser interface {
	// Normalise parses one raw file. Any error fails the whole file.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
