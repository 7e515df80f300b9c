package rules

import (
	"unicode/utf8"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// TitleLengthName is the name of the TitleLength rule.
const TitleLengthName = "TitleLength"

var _ driven.Rule = (*TitleLength)(nil)

// TitleLength requires a title of at least min_length characters.
type TitleLength struct {
	minLength int
}

// NewTitleLength creates a TitleLength rule.
func NewTitleLength(minLength int) *TitleLength {
	return &TitleLength{minLength: minLength}
}

// Name returns the rule name.
func (r *TitleLength) Name() string {
	return TitleLengthName
}

// Parameters returns the rule parameters.
func (r *TitleLength) Parameters() map[string]any {
	return map[string]any{"min_length": r.minLength}
}

// Check is not applicable without a title and invalid for a short one.
func (r *TitleLength) Check(doc *domain.Document) (domain.CheckResult, error) {
	if doc == nil {
		return domain.CheckResult{}, domain.ErrInvalidInput
	}
	if doc.Title == nil {
		return domain.NotApplicable(domain.LocationTitle), nil
	}
	if utf8.RuneCountInString(*doc.Title) < r.minLength {
		return domain.Invalid(domain.LocationTitle), nil
	}
	return domain.Valid(), nil
}
