package rules

import (
	"time"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// DateRecencyName is the name of the DateRecency rule.
const DateRecencyName = "DateRecency"

var _ driven.Rule = (*DateRecency)(nil)

// DateRecency requires a creation date no later than max_date.
type DateRecency struct {
	maxDate time.Time
}

// NewDateRecency creates a DateRecency rule.
func NewDateRecency(maxDate time.Time) *DateRecency {
	return &DateRecency{maxDate: maxDate}
}

// Name returns the rule name.
func (r *DateRecency) Name() string {
	return DateRecencyName
}

// Parameters returns the rule parameters.
func (r *DateRecency) Parameters() map[string]any {
	return map[string]any{"max_date": r.maxDate}
}

// Check is not applicable without a date and invalid for a date after the maximum.
func (r *DateRecency) Check(doc *domain.Document) (domain.CheckResult, error) {
	if doc == nil {
		return domain.CheckResult{}, domain.ErrInvalidInput
	}
	if doc.DateOfCreation == nil {
		return domain.NotApplicable(domain.LocationDateOfCreation), nil
	}
	if doc.DateOfCreation.After(r.maxDate) {
		return domain.Invalid(domain.LocationDateOfCreation), nil
	}
	return domain.Valid(), nil
}
