package review

import "github.com/archlens/archlens/catalog"

// Status is the classifier's verdict on whether available context
// indicates a rule is satisfied. The string values are part of the
// serialization contract; the markdown writer keys its legends off them.
type Status string

const (
	// StatusCompliant indicates the context shows the rule implemented.
	StatusCompliant Status = "COMPLIANT"

	// StatusNonCompliant indicates no convincing evidence of implementation.
	StatusNonCompliant Status = "NON_COMPLIANT"

	// StatusNeedsReview indicates partial evidence, or a rule that can
	// only be judged with external input.
	StatusNeedsReview Status = "NEEDS_REVIEW"

	// StatusNotApplicable indicates the rule does not apply to the workload.
	StatusNotApplicable Status = "NOT_APPLICABLE"
)

// TradeOff is one benefit/cost pair considered in a decision record.
type TradeOff struct {
	Benefit string `json:"benefit"`
	Cost    string `json:"cost"`
}

// DecisionRecord is the structured justification document synthesized for
// each assessed rule.
type DecisionRecord struct {
	Title               string     `json:"title"`
	Status              string     `json:"status"` // "Proposed" or "Accepted"
	Context             string     `json:"context"`
	Decision            string     `json:"decision"`
	Consequences        []string   `json:"consequences"`
	TradeOffs           []TradeOff `json:"tradeOffs"`
	Alternatives        []string   `json:"alternatives"`
	ImplementationNotes string     `json:"implementationNotes,omitempty"`
}

// Assessment is the per-rule outcome of a review.
type Assessment struct {
	RuleID                       string            `json:"ruleId"`
	Title                        string            `json:"title"`
	Pillar                       catalog.Pillar    `json:"pillar"`
	Risk                         catalog.RiskLevel `json:"risk"`
	Status                       Status            `json:"status"`
	Description                  string            `json:"description"`
	CurrentImplementationSummary string            `json:"currentImplementationSummary"`
	Gaps                         []string          `json:"gaps"`
	Recommendations              []string          `json:"recommendations"`
	DecisionRecord               DecisionRecord    `json:"decisionRecord"`
}

// Request describes one review invocation. An empty pillar list means
// all pillars.
type Request struct {
	Context      string           `json:"contextText"`
	DocumentText string           `json:"documentText,omitempty"`
	Pillars      []catalog.Pillar `json:"selectedPillars,omitempty"`
}

// Result is the complete outcome of a review invocation.
type Result struct {
	ID                  string                    `json:"id"`
	Request             Request                   `json:"request"`
	Assessments         []Assessment              `json:"assessments"`
	RiskSummary         map[catalog.RiskLevel]int `json:"overallRiskSummary"`
	DocumentationStatus string                    `json:"documentationStatus"`
	Recommendations     []string                  `json:"recommendationsSummary"`
}
