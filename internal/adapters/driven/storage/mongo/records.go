package mongo

import (
	"time"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// documentRecord is the BSON shape of a Document.
type documentRecord struct {
	ID                string      `bson:"_id"`
	Title             *string     `bson:"title"`
	Header            []string    `bson:"header"`
	Body              []rowRecord `bson:"body"`
	Footer            *string     `bson:"footer"`
	CountryOfCreation *string     `bson:"country_of_creation"`
	DateOfCreation    *time.Time  `bson:"date_of_creation"`
}

type rowRecord struct {
	Header string    `bson:"header"`
	Body   []float64 `bson:"body"`
}

// discrepancyRecord is the BSON shape of a Discrepancy.
type discrepancyRecord struct {
	ID              string        `bson:"_id"`
	DocumentID      string        `bson:"document_id"`
	DiscrepancyType string        `bson:"discrepancy_type"`
	Location        string        `bson:"location"`
	Details         detailsRecord `bson:"details"`
}

type detailsRecord struct {
	DocumentID     string         `bson:"document_id"`
	Rule           string         `bson:"rule"`
	RuleParameters map[string]any `bson:"rule_parameters"`
	Location       string         `bson:"location,omitempty"`
	Error          string         `bson:"error,omitempty"`
}

func toDocumentRecord(doc *domain.Document) documentRecord {
	rows := make([]rowRecord, 0, len(doc.Body))
	for _, row := range doc.Body {
		rows = append(rows, rowRecord{Header: row.Header, Body: row.Body})
	}
	return documentRecord{
		ID:                doc.DocumentID,
		Title:             doc.Title,
		Header:            doc.Header,
		Body:              rows,
		Footer:            doc.Footer,
		CountryOfCreation: doc.CountryOfCreation,
		DateOfCreation:    doc.DateOfCreation,
	}
}

func (r *documentRecord) toDomain() domain.Document {
	var rows []domain.DocumentRow
	for _, row := range r.Body {
		rows = append(rows, domain.DocumentRow{Header: row.Header, Body: row.Body})
	}
	var date *time.Time
	if r.DateOfCreation != nil {
		t := r.DateOfCreation.UTC()
		date = &t
	}
	return domain.Document{
		DocumentID:        r.ID,
		Title:             r.Title,
		Header:            r.Header,
		Body:              rows,
		Footer:            r.Footer,
		CountryOfCreation: r.CountryOfCreation,
		DateOfCreation:    date,
	}
}

func toDiscrepancyRecord(d *domain.Discrepancy) discrepancyRecord {
	return discrepancyRecord{
		ID:              d.DiscrepancyID,
		DocumentID:      d.DocumentID,
		DiscrepancyType: d.DiscrepancyType,
		Location:        string(d.Location),
		Details: detailsRecord{
			DocumentID:     d.Details.DocumentID,
			Rule:           d.Details.Rule,
			RuleParameters: d.Details.RuleParameters,
			Location:       string(d.Details.Location),
			Error:          d.Details.Error,
		},
	}
}

func (r *discrepancyRecord) toDomain() domain.Discrepancy {
	return domain.Discrepancy{
		DiscrepancyID:   r.ID,
		DocumentID:      r.DocumentID,
		DiscrepancyType: r.DiscrepancyType,
		Location:        domain.Location(r.Location),
		Details: domain.OutcomeInfo{
			DocumentID:     r.Details.DocumentID,
			Rule:           r.Details.Rule,
			RuleParameters: r.Details.RuleParameters,
			Location:       domain.Location(r.Details.Location),
			Error:          r.Details.Error,
		},
	}
}
