package driven

import (
	"context"
	"iter"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// Source enumerates raw files believed to contain one table each.
// Each call to Documents starts a fresh, finite, single-pass sequence.
type Source interface {
	// Type returns the source type identifier.
	Type() string

	// Validate checks the source is readable before enumeration.
	Validate(ctx context.Context) error

	// Documents yields the raw contents of each file in unspecified order.
	// A non-nil error is reported for a file that could not be read; the
	// sequence continues with the next file.
	Documents(ctx context.Context) iter.Seq2[*domain.RawDocument, error]
}
