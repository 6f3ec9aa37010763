package solution

// Complexity grades implementation effort.
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// Impact grades business impact.
type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// Smart is a remediation statement in SMART form (Specific, Measurable,
// Achievable, Relevant, Time-bound) plus ownership and rollback metadata.
type Smart struct {
	RuleID string `json:"ruleId"`

	Specific   string `json:"specific"`
	Measurable string `json:"measurable"`
	Achievable string `json:"achievable"`
	Relevant   string `json:"relevant"`
	TimeBound  string `json:"timeBound"`

	Owner            string     `json:"owner"`
	Complexity       Complexity `json:"complexity"`
	BusinessImpact   Impact     `json:"businessImpact"`
	Reversible       bool       `json:"reversible"`
	PatternReference string     `json:"patternReference,omitempty"`

	Prerequisites   []string `json:"prerequisites"`
	SuccessCriteria []string `json:"successCriteria"`
	RollbackPlan    string   `json:"rollbackPlan"`
}
