package table

import (
	"bytes"
	"context"
	"fmt"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser turns a file holding one HTML table into a Document.
type Normaliser struct{}

// New creates a new table normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise extracts the table and its footer metadata.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	tbl, err := Extract(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("extracting table: %w", err)
	}

	meta := ParseFooter(tbl.Footer)

	return &domain.Document{
		DocumentID:        tbl.ID,
		Title:             tbl.Title,
		Header:            tbl.Header,
		Body:              tbl.Rows,
		Footer:            tbl.Footer,
		CountryOfCreation: meta.Country,
		DateOfCreation:    meta.Date,
	}, nil
}
