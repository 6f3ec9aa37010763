package priority

import (
	"sort"

	"github.com/archlens/archlens/catalog"
)

// pillarImportance is the fixed importance contribution per pillar.
var pillarImportance = map[catalog.Pillar]int{
	catalog.PillarSecurity:              4,
	catalog.PillarReliability:           4,
	catalog.PillarOperationalExcellence: 3,
	catalog.PillarCostOptimization:      2,
	catalog.PillarPerformanceEfficiency: 2,
	catalog.PillarSustainability:        1,
}

// maxAxisScore bounds both matrix axes.
const maxAxisScore = 10

// Urgency computes the urgency score for a rule, clamped to [0, 10].
func Urgency(rule catalog.Rule) int {
	score := 0
	switch rule.Risk {
	case catalog.RiskHigh:
		score += 8
	case catalog.RiskMedium:
		score += 5
	default:
		score += 2
	}

	if rule.Pillar == catalog.PillarSecurity || rule.Pillar == catalog.PillarReliability {
		score += 2
	}

	return clamp(score)
}

// Importance computes the importance score for a rule given its related
// ids present in the working set, clamped to [0, 10].
func Importance(rule catalog.Rule, related []string) int {
	score := 0
	if rule.Foundational() {
		score += 4
	}

	relatedCount := len(related)
	if relatedCount > 4 {
		relatedCount = 4
	}
	score += relatedCount

	if p, ok := pillarImportance[rule.Pillar]; ok {
		score += p
	} else {
		score += 1
	}

	return clamp(score)
}

func clamp(score int) int {
	if score > maxAxisScore {
		return maxAxisScore
	}
	if score < 0 {
		return 0
	}
	return score
}

// quadrant buckets a rule by its axis scores against the configured
// thresholds.
func (a *Analyzer) quadrant(urgency, importance int) Quadrant {
	urgent := urgency >= a.config.UrgentThreshold
	important := importance >= a.config.ImportantThreshold

	switch {
	case urgent && important:
		return QuadrantDoFirst
	case !urgent && important:
		return QuadrantSchedule
	case urgent && !important:
		return QuadrantDelegate
	default:
		return QuadrantEliminate
	}
}

// BuildMatrix classifies the pillar-filtered working set into the
// Eisenhower matrix. Items within each quadrant are sorted descending by
// combined urgency+importance score; ties keep catalog order.
func (a *Analyzer) BuildMatrix(pillars []catalog.Pillar) Matrix {
	rules := a.catalog.Select(pillars)

	inSet := make(map[string]bool, len(rules))
	for _, r := range rules {
		inSet[r.ID] = true
	}

	var matrix Matrix
	for _, rule := range rules {
		urgency := Urgency(rule)
		importance := Importance(rule, relatedInSet(rule, inSet))
		q := a.quadrant(urgency, importance)

		item := MatrixItem{
			Rule:       rule,
			Urgency:    urgency,
			Importance: importance,
			Quadrant:   q,
			ActionText: q.Action(),
		}

		switch q {
		case QuadrantDoFirst:
			matrix.DoFirst = append(matrix.DoFirst, item)
		case QuadrantSchedule:
			matrix.Schedule = append(matrix.Schedule, item)
		case QuadrantDelegate:
			matrix.Delegate = append(matrix.Delegate, item)
		case QuadrantEliminate:
			matrix.Eliminate = append(matrix.Eliminate, item)
		}
	}

	for _, items := range [][]MatrixItem{matrix.DoFirst, matrix.Schedule, matrix.Delegate, matrix.Eliminate} {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Urgency+items[i].Importance > items[j].Urgency+items[j].Importance
		})
	}

	return matrix
}
