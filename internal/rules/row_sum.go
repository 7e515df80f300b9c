package rules

import (
	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// RowSumThresholdName is the name of the RowSumThreshold rule.
const RowSumThresholdName = "RowSumThreshold"

var _ driven.Rule = (*RowSumThreshold)(nil)

// RowSumThreshold requires the running sum of the first row to stay at or
// below max_sum.
type RowSumThreshold struct {
	maxSum float64
}

// NewRowSumThreshold creates a RowSumThreshold rule.
func NewRowSumThreshold(maxSum float64) *RowSumThreshold {
	return &RowSumThreshold{maxSum: maxSum}
}

// Name returns the rule name.
func (r *RowSumThreshold) Name() string {
	return RowSumThresholdName
}

// Parameters returns the rule parameters.
func (r *RowSumThreshold) Parameters() map[string]any {
	return map[string]any{"max_sum": r.maxSum}
}

// Check reports the first index at which the running sum exceeds the
// maximum. Accumulation stops there.
func (r *RowSumThreshold) Check(doc *domain.Document) (domain.CheckResult, error) {
	if doc == nil {
		return domain.CheckResult{}, domain.ErrInvalidInput
	}

	row := doc.FirstRow()
	if row == nil || len(row.Body) == 0 {
		return domain.NotApplicable(domain.LocationFirstRow), nil
	}

	var sum float64
	for i, value := range row.Body {
		sum += value
		if sum > r.maxSum {
			return domain.Invalid(domain.RowValueLocation(0, i)), nil
		}
	}
	return domain.Valid(), nil
}
