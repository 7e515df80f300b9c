package rules

import (
	"fmt"
	"time"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// Default rule parameters.
const (
	DefaultMinTitleLength = 2
	DefaultMaxRowSum      = 5220.0
)

// DefaultMaxDate is the default latest permitted creation date.
var DefaultMaxDate = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// RegisterDefaults registers all built-in rules with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(TitleLengthName, buildTitleLength)
	r.Register(DateRecencyName, buildDateRecency)
	r.Register(RowSumThresholdName, buildRowSumThreshold)
}

// DefaultRegistry returns a registry with the built-in rules registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// DefaultConfigs returns the configuration of the default rule set.
func DefaultConfigs() []Config {
	return []Config{
		{Name: TitleLengthName, Params: map[string]any{"min_length": DefaultMinTitleLength}},
		{Name: DateRecencyName, Params: map[string]any{"max_date": DefaultMaxDate}},
		{Name: RowSumThresholdName, Params: map[string]any{"max_sum": DefaultMaxRowSum}},
	}
}

// DefaultRuleSet returns the default rules in registration order.
func DefaultRuleSet() []driven.Rule {
	return []driven.Rule{
		NewTitleLength(DefaultMinTitleLength),
		NewDateRecency(DefaultMaxDate),
		NewRowSumThreshold(DefaultMaxRowSum),
	}
}

// buildTitleLength creates a TitleLength rule.
// Supported config keys:
//   - min_length (int): Minimum title length in characters (required, >= 0)
func buildTitleLength(cfg map[string]any) (driven.Rule, error) {
	minLength, err := getInt(cfg, "min_length")
	if err != nil {
		return nil, err
	}
	if minLength < 0 {
		return nil, fmt.Errorf("%w: min_length must not be negative", domain.ErrInvalidRuleParameter)
	}
	return NewTitleLength(minLength), nil
}

// buildDateRecency creates a DateRecency rule.
// Supported config keys:
//   - max_date (time or string): Latest permitted creation date (required)
func buildDateRecency(cfg map[string]any) (driven.Rule, error) {
	maxDate, err := getTime(cfg, "max_date")
	if err != nil {
		return nil, err
	}
	return NewDateRecency(maxDate), nil
}

// buildRowSumThreshold creates a RowSumThreshold rule.
// Supported config keys:
//   - max_sum (number): Largest permitted running sum of the first row (required)
func buildRowSumThreshold(cfg map[string]any) (driven.Rule, error) {
	maxSum, err := getFloat(cfg, "max_sum")
	if err != nil {
		return nil, err
	}
	return NewRowSumThreshold(maxSum), nil
}

// getInt extracts an int from a generic config map.
// Handles int, int64, and whole float64 values that may come from TOML/JSON parsing.
func getInt(cfg map[string]any, key string) (int, error) {
	val, ok := cfg[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidRuleParameter, key)
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %s must be an integer, got %v", domain.ErrInvalidRuleParameter, key, val)
}

// getFloat extracts a float64 from a generic config map.
func getFloat(cfg map[string]any, key string) (float64, error) {
	val, ok := cfg[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidRuleParameter, key)
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %v", domain.ErrInvalidRuleParameter, key, val)
	}
}

// getTime extracts a time from a generic config map.
// Accepts time.Time, RFC3339 strings and YYYY-MM-DD strings.
func getTime(cfg map[string]any, key string) (time.Time, error) {
	val, ok := cfg[key]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s is required", domain.ErrInvalidRuleParameter, key)
	}

	switch v := val.(type) {
	case time.Time:
		return v, nil
	case string:
		for _, layout := range []string{time.RFC3339, time.DateOnly} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s must be a date, got %v", domain.ErrInvalidRuleParameter, key, val)
}
