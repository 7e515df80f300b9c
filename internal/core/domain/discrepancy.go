package domain

// DiscrepancyTypeError is the discrepancy type of rule execution errors.
const DiscrepancyTypeError = "Error"

// Discrepancy records one rule violation or processing error for a document.
type Discrepancy struct {
	// DiscrepancyID is derived from the document id and rule name so that
	// re-validation produces the same key.
	DiscrepancyID string `json:"discrepancy_id"`

	DocumentID string `json:"document_id"`

	// DiscrepancyType is the rule name, or "Error" for rule failures.
	DiscrepancyType string `json:"discrepancy_type"`

	Location Location `json:"location"`

	// Details is the full outcome info.
	Details OutcomeInfo `json:"details"`
}

// DiscrepancyID returns the deterministic identifier for a document and
// discrepancy type. Error discrepancies use the "error" suffix.
func DiscrepancyID(documentID, discrepancyType string) string {
	if discrepancyType == DiscrepancyTypeError {
		return documentID + "error"
	}
	return documentID + discrepancyType
}

// NewDiscrepancy converts a non-valid outcome into a discrepancy.
// It returns false for valid outcomes.
func NewDiscrepancy(outcome ValidationOutcome) (Discrepancy, bool) {
	var kind string
	switch outcome.Status {
	case StatusValid:
		return Discrepancy{}, false
	case StatusError:
		kind = DiscrepancyTypeError
	default:
		kind = outcome.Info.Rule
	}

	return Discrepancy{
		DiscrepancyID:   DiscrepancyID(outcome.Info.DocumentID, kind),
		DocumentID:      outcome.Info.DocumentID,
		DiscrepancyType: kind,
		Location:        outcome.Info.Location,
		Details:         outcome.Info,
	}, true
}
