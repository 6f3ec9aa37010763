// Package priority implements the prioritization half of the engine:
// the priority scorer and ranker, the Eisenhower matrix classifier, and
// the phased roadmap builder.
//
// None of these depend on compliance classification; they operate purely
// on rule metadata (risk, pillar, relationships, id pattern). All
// operations are deterministic, and ties always preserve catalog order
// through stable sorts.
package priority

import (
	"fmt"
	"sort"
	"strings"

	"github.com/archlens/archlens/catalog"
)

// riskWeight returns the base score contribution of a risk level.
func riskWeight(r catalog.RiskLevel) int {
	switch r {
	case catalog.RiskHigh:
		return 10
	case catalog.RiskMedium:
		return 5
	case catalog.RiskLow:
		return 2
	}
	return 1
}

// pillarImpacts is the fixed pillar-specific rationale sentence table.
var pillarImpacts = map[catalog.Pillar]string{
	catalog.PillarSecurity:              "Critical for protecting data and systems",
	catalog.PillarReliability:           "Essential for system availability and resilience",
	catalog.PillarOperationalExcellence: "Fundamental for operational maturity",
	catalog.PillarCostOptimization:      "Significant cost impact if neglected",
	catalog.PillarPerformanceEfficiency: "Major performance implications",
	catalog.PillarSustainability:        "Important for environmental responsibility",
}

// Analyzer scores and ranks rules against a working set. It is safe for
// concurrent use over the immutable catalog.
type Analyzer struct {
	catalog *catalog.Catalog
	config  Config
}

// NewAnalyzer creates an analyzer with the given configuration.
func NewAnalyzer(c *catalog.Catalog, cfg Config) *Analyzer {
	return &Analyzer{catalog: c, config: cfg}
}

// relatedInSet returns the subset of a rule's related ids present in the
// working set, preserving the order they are declared on the rule.
func relatedInSet(rule catalog.Rule, inSet map[string]bool) []string {
	var related []string
	for _, id := range rule.Related {
		if inSet[id] {
			related = append(related, id)
		}
	}
	return related
}

// Score computes the priority score and rationale for a rule given the
// related ids present in the working set. The score is a sum of
// independent bonuses and has no fixed upper bound.
func (a *Analyzer) Score(rule catalog.Rule, related []string) (int, string) {
	score := riskWeight(rule.Risk)

	relationshipBonus := 2 * len(related)
	if relationshipBonus > 10 {
		relationshipBonus = 10
	}
	score += relationshipBonus

	switch rule.Pillar {
	case catalog.PillarSecurity, catalog.PillarReliability:
		score += 5
	case catalog.PillarOperationalExcellence:
		score += 3
	}

	if rule.Foundational() {
		score += 3
	}

	return score, rationale(rule, related)
}

func rationale(rule catalog.Rule, related []string) string {
	var reasons []string
	if rule.Risk == catalog.RiskHigh {
		reasons = append(reasons, "High risk if not implemented")
	}
	if len(related) > 0 {
		reasons = append(reasons, fmt.Sprintf("Foundational for %d related practices", len(related)))
	}
	if impact, ok := pillarImpacts[rule.Pillar]; ok {
		reasons = append(reasons, impact)
	}
	if len(reasons) == 0 {
		return "Important for overall architecture quality"
	}
	return strings.Join(reasons, "; ")
}

// Rank scores every rule selected by the pillar filter and returns them
// ranked by descending score. The sort is stable: ties keep catalog
// order, which downstream roadmap phase boundaries depend on. A positive
// count truncates the result to the top N; count <= 0 returns all.
func (a *Analyzer) Rank(pillars []catalog.Pillar, count int) []Item {
	rules := a.catalog.Select(pillars)

	inSet := make(map[string]bool, len(rules))
	for _, r := range rules {
		inSet[r.ID] = true
	}

	items := make([]Item, 0, len(rules))
	for _, rule := range rules {
		related := relatedInSet(rule, inSet)
		score, reason := a.Score(rule, related)
		items = append(items, Item{
			Rule:    rule,
			Score:   score,
			Related: related,
			Reason:  reason,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	for i := range items {
		items[i].Rank = i + 1
	}

	if count > 0 && count < len(items) {
		items = items[:count]
	}
	return items
}
