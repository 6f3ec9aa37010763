package catalog

import "fmt"

// Pillar identifies one of the six top-level architectural concern categories.
type Pillar string

const (
	// PillarOperationalExcellence covers running and evolving workloads effectively.
	PillarOperationalExcellence Pillar = "OPERATIONAL_EXCELLENCE"

	// PillarSecurity covers protecting data, systems, and assets.
	PillarSecurity Pillar = "SECURITY"

	// PillarReliability covers workload availability and recovery from failure.
	PillarReliability Pillar = "RELIABILITY"

	// PillarPerformanceEfficiency covers efficient use of computing resources.
	PillarPerformanceEfficiency Pillar = "PERFORMANCE_EFFICIENCY"

	// PillarCostOptimization covers delivering business value at the lowest price point.
	PillarCostOptimization Pillar = "COST_OPTIMIZATION"

	// PillarSustainability covers minimizing environmental impact.
	PillarSustainability Pillar = "SUSTAINABILITY"
)

// Pillars lists all pillars in catalog order. The order is load-bearing:
// rule iteration, ranking tie-breaks, and roadmap phase boundaries all
// derive from it.
var Pillars = []Pillar{
	PillarOperationalExcellence,
	PillarSecurity,
	PillarReliability,
	PillarPerformanceEfficiency,
	PillarCostOptimization,
	PillarSustainability,
}

// pillarDisplayNames maps pillar values to human-readable names.
var pillarDisplayNames = map[Pillar]string{
	PillarOperationalExcellence: "Operational Excellence",
	PillarSecurity:              "Security",
	PillarReliability:           "Reliability",
	PillarPerformanceEfficiency: "Performance Efficiency",
	PillarCostOptimization:      "Cost Optimization",
	PillarSustainability:        "Sustainability",
}

// Valid reports whether p is a known pillar value.
func (p Pillar) Valid() bool {
	_, ok := pillarDisplayNames[p]
	return ok
}

// DisplayName returns the human-readable pillar name, e.g. "Operational Excellence".
func (p Pillar) DisplayName() string {
	if name, ok := pillarDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// ParsePillar converts a string to a Pillar, accepting the canonical
// enum value only.
func ParsePillar(s string) (Pillar, error) {
	p := Pillar(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown pillar %q", s)
	}
	return p, nil
}

// RiskLevel expresses the risk carried by leaving a rule unimplemented.
type RiskLevel string

const (
	// RiskLow indicates limited exposure if the rule is not implemented.
	RiskLow RiskLevel = "LOW"

	// RiskMedium indicates meaningful exposure that should be planned for.
	RiskMedium RiskLevel = "MEDIUM"

	// RiskHigh indicates exposure that demands prompt attention.
	RiskHigh RiskLevel = "HIGH"
)

// RiskLevels lists all risk levels from highest to lowest.
var RiskLevels = []RiskLevel{RiskHigh, RiskMedium, RiskLow}

// Valid reports whether r is a known risk level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ParseRiskLevel converts a string to a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown risk level %q", s)
	}
	return r, nil
}
