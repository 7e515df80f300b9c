package domain

import "time"

// Document is the canonical representation of one parsed table.
// It is built once from a source file and never mutated afterwards.
type Document struct {
	// DocumentID is taken from the table's id attribute and is the natural key.
	DocumentID string `json:"document_id"`

	// Title is the table caption, nil when the table has no caption.
	Title *string `json:"title"`

	// Header holds the column labels, excluding the row label column.
	Header []string `json:"header"`

	// Body holds the table rows in source order.
	Body []DocumentRow `json:"body"`

	// Footer is the raw footer text, nil when the table has no footer.
	// It is kept even when no metadata could be parsed from it.
	Footer *string `json:"footer"`

	// CountryOfCreation is parsed from the footer.
	CountryOfCreation *string `json:"country_of_creation"`

	// DateOfCreation is parsed from the footer.
	DateOfCreation *time.Time `json:"date_of_creation"`
}

// DocumentRow is one labelled row of a Document.
// Body is positionally aligned with the owning Document's Header.
type DocumentRow struct {
	// Header is the row label taken from the first cell.
	Header string `json:"header"`

	// Body holds the numeric values. Percentages are stored as fractions.
	Body []float64 `json:"body"`
}

// FirstRow returns the first row of the document, or nil when the body is empty.
func (d *Document) FirstRow() *DocumentRow {
	if len(d.Body) == 0 {
		return nil
	}
	return &d.Body[0]
}

// IDs returns the document identifiers in order.
func IDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	for i := range docs {
		ids = append(ids, docs[i].DocumentID)
	}
	return ids
}
