// Package solution synthesizes SMART-form remediation solutions from
// catalog rules: specific/measurable/achievable/relevant/time-bound
// statements plus ownership, complexity, impact, and rollback metadata.
//
// Synthesis depends only on rule metadata; calling it twice with the
// same rule yields identical output.
package solution

import (
	"fmt"
	"strings"

	"github.com/archlens/archlens/catalog"
)

// DefaultOwner is used when a request does not name an owner.
const DefaultOwner = "Architecture Team"

// Synthesizer builds SMART solutions for catalog rules.
type Synthesizer struct {
	catalog *catalog.Catalog
}

// NewSynthesizer creates a synthesizer over the given catalog.
func NewSynthesizer(c *catalog.Catalog) *Synthesizer {
	return &Synthesizer{catalog: c}
}

// complexityRules is the ordered complexity decision list; the first
// matching predicate wins. Foundational practices come first: they stay
// Low even when high risk or heavily related.
var complexityRules = []struct {
	Match func(catalog.Rule) bool
	Value Complexity
}{
	{func(r catalog.Rule) bool { return r.Foundational() }, ComplexityLow},
	{func(r catalog.Rule) bool { return r.Risk == catalog.RiskHigh }, ComplexityMedium},
	{func(r catalog.Rule) bool { return len(r.Related) > 3 }, ComplexityMedium},
}

// AssessComplexity grades implementation complexity for a rule.
func AssessComplexity(rule catalog.Rule) Complexity {
	for _, cr := range complexityRules {
		if cr.Match(rule) {
			return cr.Value
		}
	}
	return ComplexityLow
}

// AssessImpact grades the business impact of implementing a rule.
func AssessImpact(rule catalog.Rule) Impact {
	switch {
	case rule.Risk == catalog.RiskHigh:
		return ImpactHigh
	case rule.Pillar == catalog.PillarSecurity || rule.Pillar == catalog.PillarReliability:
		return ImpactHigh
	case rule.Risk == catalog.RiskMedium:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// Reversible reports whether the solution is a two-way door. Structural
// changes, identified by "architecture" or "design" in the title, are
// treated as one-way.
func Reversible(rule catalog.Rule) bool {
	title := strings.ToLower(rule.Title)
	return !strings.Contains(title, "architecture") && !strings.Contains(title, "design")
}

// Synthesize builds the SMART solution for a rule. An empty owner falls
// back to DefaultOwner.
func (s *Synthesizer) Synthesize(rule catalog.Rule, owner string) Smart {
	if owner == "" {
		owner = DefaultOwner
	}

	complexity := AssessComplexity(rule)
	reversible := Reversible(rule)

	smart := Smart{
		RuleID:           rule.ID,
		Specific:         specificOutcome(rule),
		Measurable:       lookupPillar(measurableCriteria, rule.Pillar, measurableFallback),
		Achievable:       achievableRationales[complexity],
		Relevant:         lookupPillar(relevanceStatements, rule.Pillar, relevanceFallback),
		TimeBound:        timelines[complexity],
		Owner:            owner,
		Complexity:       complexity,
		BusinessImpact:   AssessImpact(rule),
		Reversible:       reversible,
		PatternReference: patternReference(rule),
		Prerequisites:    prerequisites(rule),
		SuccessCriteria:  append([]string(nil), successCriteria...),
	}

	if reversible {
		smart.RollbackPlan = rollbackReversible
	} else {
		smart.RollbackPlan = rollbackIrreversible
	}

	return smart
}

// ForPillars synthesizes solutions for every rule selected by the pillar
// filter, in catalog order.
func (s *Synthesizer) ForPillars(pillars []catalog.Pillar, owner string) []Smart {
	rules := s.catalog.Select(pillars)
	solutions := make([]Smart, 0, len(rules))
	for _, rule := range rules {
		solutions = append(solutions, s.Synthesize(rule, owner))
	}
	return solutions
}

// ForRule synthesizes the solution for a single rule id. It returns a
// *catalog.UnknownRuleIDError for ids not in the catalog.
func (s *Synthesizer) ForRule(ruleID, owner string) (Smart, error) {
	rule, err := s.catalog.Lookup(ruleID)
	if err != nil {
		return Smart{}, err
	}
	return s.Synthesize(rule, owner), nil
}

// QuickWins filters solutions down to low-complexity items with medium
// or high business impact.
func QuickWins(solutions []Smart) []Smart {
	var wins []Smart
	for _, sol := range solutions {
		if sol.Complexity == ComplexityLow && (sol.BusinessImpact == ImpactMedium || sol.BusinessImpact == ImpactHigh) {
			wins = append(wins, sol)
		}
	}
	return wins
}

func specificOutcome(rule catalog.Rule) string {
	title := strings.ToLower(rule.Title)
	prefix := rule.PillarPrefix()
	for _, o := range specificOutcomes {
		if o.Prefix == prefix {
			return fmt.Sprintf(o.Template, title)
		}
	}
	return fmt.Sprintf(specificFallback, title)
}

func lookupPillar(table []struct {
	Pillar catalog.Pillar
	Text   string
}, p catalog.Pillar, fallback string) string {
	for _, e := range table {
		if e.Pillar == p {
			return e.Text
		}
	}
	return fallback
}

func patternReference(rule catalog.Rule) string {
	title := strings.ToLower(rule.Title)
	for _, p := range patternReferences {
		if strings.Contains(title, p.Keyword) {
			return p.URL
		}
	}
	return defaultPatternReference
}

func prerequisites(rule catalog.Rule) []string {
	prereqs := append([]string(nil), basePrerequisites...)
	switch rule.Pillar {
	case catalog.PillarSecurity:
		prereqs = append(prereqs, "Security team approval")
	case catalog.PillarCostOptimization:
		prereqs = append(prereqs, "Budget approval")
	}
	return prereqs
}
