package domain

// ValidationStatus is the status of evaluating one rule against one document.
type ValidationStatus string

// Validation statuses.
const (
	// StatusValid means the document satisfies the rule.
	StatusValid ValidationStatus = "valid"

	// StatusInvalid means the document violates the rule.
	StatusInvalid ValidationStatus = "invalid"

	// StatusError means the rule itself failed while checking.
	StatusError ValidationStatus = "error"

	// StatusNotApplicable means the data the rule needs is absent.
	StatusNotApplicable ValidationStatus = "not_applicable"
)

// String returns the string representation.
func (s ValidationStatus) String() string {
	return string(s)
}

// CheckResult is what a rule reports for one document.
type CheckResult struct {
	Status   ValidationStatus
	Location Location
}

// Valid returns a passing check result.
func Valid() CheckResult {
	return CheckResult{Status: StatusValid}
}

// Invalid returns a failing check result at the given location.
func Invalid(loc Location) CheckResult {
	return CheckResult{Status: StatusInvalid, Location: loc}
}

// NotApplicable returns a check result for missing data at the given location.
func NotApplicable(loc Location) CheckResult {
	return CheckResult{Status: StatusNotApplicable, Location: loc}
}

// Passed reports whether the check passed.
func (r CheckResult) Passed() bool {
	return r.Status == StatusValid
}

// OutcomeInfo carries the reporting details of a validation outcome.
type OutcomeInfo struct {
	DocumentID     string         `json:"document_id"`
	Rule           string         `json:"rule"`
	RuleParameters map[string]any `json:"rule_parameters"`
	Location       Location       `json:"location,omitempty"`
	Error          string         `json:"error,omitempty"`
}

// ValidationOutcome is the transient result of one rule against one document.
type ValidationOutcome struct {
	Status ValidationStatus
	Info   OutcomeInfo
}
