package service

import (
	"fmt"

	"github.com/archlens/archlens/catalog"
)

// NATS request/reply subjects exposed by the server.
const (
	SubjectReview     = "archlens.review"
	SubjectPriorities = "archlens.priorities"
	SubjectMatrix     = "archlens.matrix"
	SubjectRoadmap    = "archlens.roadmap"
	SubjectSolutions  = "archlens.solutions"
	SubjectRules      = "archlens.rules"
	SubjectPillars    = "archlens.pillars"
)

// ReviewRequest asks for a full workload review.
type ReviewRequest struct {
	Context            string   `json:"context"`
	DocumentationPaths []string `json:"documentationPaths,omitempty"`
	Pillars            []string `json:"pillars,omitempty"`
}

// PriorityRequest asks for ranked priority items. Count of 0 means all.
type PriorityRequest struct {
	Pillars []string `json:"pillars,omitempty"`
	Count   int      `json:"count,omitempty"`
}

// MatrixRequest asks for the Eisenhower matrix.
type MatrixRequest struct {
	Pillars []string `json:"pillars,omitempty"`
}

// RoadmapRequest asks for the phased roadmap over ranked items.
type RoadmapRequest struct {
	Pillars []string `json:"pillars,omitempty"`
	Count   int      `json:"count,omitempty"`
}

// SolutionsRequest asks for SMART solutions. RuleID narrows to one
// rule; QuickWins filters to low-complexity high-impact items.
type SolutionsRequest struct {
	Pillars   []string `json:"pillars,omitempty"`
	RuleID    string   `json:"ruleId,omitempty"`
	Owner     string   `json:"owner,omitempty"`
	QuickWins bool     `json:"quickWins,omitempty"`
}

// RulesRequest asks for the rule listing, optionally per pillar.
type RulesRequest struct {
	Pillar string `json:"pillar,omitempty"`
}

// PillarInfo describes one pillar in the pillars listing.
type PillarInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RuleCount   int    `json:"ruleCount"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is returned when a request cannot be served.
type ErrorResponse struct {
	Error string `json:"error"`
}

// parsePillars converts pillar strings, failing on the first unknown.
func parsePillars(names []string) ([]catalog.Pillar, error) {
	pillars := make([]catalog.Pillar, 0, len(names))
	for _, name := range names {
		p, err := catalog.ParsePillar(name)
		if err != nil {
			return nil, fmt.Errorf("parse pillar %q: %w", name, err)
		}
		pillars = append(pillars, p)
	}
	return pillars, nil
}
