package services

import (
	"fmt"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

// ValidationEngine evaluates a fixed rule set against Documents.
type ValidationEngine struct {
	rules []driven.Rule
}

// NewValidationEngine creates an engine over rules, evaluated in the order given.
func NewValidationEngine(rules []driven.Rule) *ValidationEngine {
	return &ValidationEngine{rules: rules}
}

// Rules returns the rules in evaluation order.
func (e *ValidationEngine) Rules() []driven.Rule {
	return e.rules
}

// unknownRule names a rule whose Name method failed.
const unknownRule = "<unknown>"

// Evaluate returns one outcome per rule, in rule order.
// A rule that returns an error or panics yields an Error outcome
// without a location; the remaining rules still run. A nil document
// yields an Error outcome for every rule.
func (e *ValidationEngine) Evaluate(doc *domain.Document) []domain.ValidationOutcome {
	outcomes := make([]domain.ValidationOutcome, 0, len(e.rules))
	for _, rule := range e.rules {
		outcomes = append(outcomes, e.evaluate(rule, doc))
	}
	return outcomes
}

func (e *ValidationEngine) evaluate(rule driven.Rule, doc *domain.Document) domain.ValidationOutcome {
	name, err := protect(func() (string, error) { return rule.Name(), nil })
	if err != nil {
		name = unknownRule
	}
	info := domain.OutcomeInfo{Rule: name}
	if doc != nil {
		info.DocumentID = doc.DocumentID
	}
	if err != nil {
		return e.failed(info, err)
	}

	params, err := protect(func() (map[string]any, error) { return rule.Parameters(), nil })
	if err != nil {
		return e.failed(info, fmt.Errorf("parameters: %w", err))
	}
	info.RuleParameters = params

	if doc == nil {
		return e.failed(info, domain.ErrInvalidInput)
	}

	result, err := protect(func() (domain.CheckResult, error) {
		return rule.Check(doc)
	})
	if err != nil {
		return e.failed(info, err)
	}

	info.Location = result.Location
	return domain.ValidationOutcome{Status: result.Status, Info: info}
}

// failed logs err and returns an Error outcome carrying its message.
func (e *ValidationEngine) failed(info domain.OutcomeInfo, err error) domain.ValidationOutcome {
	logger.Error("Rule %s failed on document %s: %v", info.Rule, info.DocumentID, err)
	info.Error = err.Error()
	return domain.ValidationOutcome{Status: domain.StatusError, Info: info}
}
