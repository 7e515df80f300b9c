package driven

import "github.com/custodia-labs/discrepancy-finder/internal/core/domain"

// Rule is an independent, stateless check over a Document.
// Parameters are fixed at construction and a rule never mutates the document.
type Rule interface {
	// Name returns the stable rule name used as discrepancy type.
	Name() string

	// Parameters returns the rule's construction parameters for reporting.
	Parameters() map[string]any

	// Check evaluates the document. A non-nil error is reported as an
	// Error outcome for this rule only.
	Check(doc *domain.Document) (domain.CheckResult, error)
}
