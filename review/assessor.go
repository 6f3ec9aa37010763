// Package review implements the assessment half of the engine: the
// compliance classifier, the gap and recommendation generator, the
// decision record synthesizer, and the Assessor that drives a full
// review over a pillar-filtered rule set.
//
// Every operation is a pure function over the immutable catalog and the
// request; identical inputs produce identical outputs.
package review

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/archlens/archlens/catalog"
)

// Assessor performs reviews against a rule catalog. It is safe for
// concurrent use; per-invocation state stays on the stack.
type Assessor struct {
	catalog    *catalog.Catalog
	classifier *Classifier
	logger     *slog.Logger
}

// NewAssessor creates an assessor over the given catalog using the
// default keyword table.
func NewAssessor(c *catalog.Catalog) *Assessor {
	return &Assessor{
		catalog:    c,
		classifier: NewClassifier(DefaultKeywordTable()),
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger used for review progress.
func (a *Assessor) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// SetClassifier replaces the compliance classifier. Used by tests to pin
// keyword tables.
func (a *Assessor) SetClassifier(c *Classifier) {
	a.classifier = c
}

// Review assesses every rule selected by the request's pillar filter
// against the request's context and document text. An empty working set
// is valid and yields an empty assessment list.
func (a *Assessor) Review(req Request) Result {
	rules := a.catalog.Select(req.Pillars)

	// Context and documentation are concatenated and lower-cased once;
	// the classifier and the implementation summary both read the
	// combined text.
	combined := strings.ToLower(req.Context) + " " + strings.ToLower(req.DocumentText)

	a.logger.Info("starting review",
		slog.Int("rules", len(rules)),
		slog.Int("context_chars", len(req.Context)),
		slog.Int("document_chars", len(req.DocumentText)))

	result := Result{
		ID:          uuid.New().String(),
		Request:     req,
		Assessments: make([]Assessment, 0, len(rules)),
		RiskSummary: map[catalog.RiskLevel]int{
			catalog.RiskLow:    0,
			catalog.RiskMedium: 0,
			catalog.RiskHigh:   0,
		},
	}

	for _, rule := range rules {
		assessment := a.assess(rule, combined)
		result.Assessments = append(result.Assessments, assessment)

		if assessment.Status != StatusCompliant {
			result.RiskSummary[rule.Risk]++
		}
	}

	result.DocumentationStatus = documentationStatus(req.DocumentText)
	result.Recommendations = summaryRecommendations(result.Assessments)

	return result
}

// Assess runs the full per-rule pipeline for a single rule id. It returns
// a *catalog.UnknownRuleIDError for ids not in the catalog.
func (a *Assessor) Assess(ruleID string, req Request) (Assessment, error) {
	rule, err := a.catalog.Lookup(ruleID)
	if err != nil {
		return Assessment{}, err
	}
	combined := strings.ToLower(req.Context) + " " + strings.ToLower(req.DocumentText)
	return a.assess(rule, combined), nil
}

func (a *Assessor) assess(rule catalog.Rule, combined string) Assessment {
	status := a.classifier.Classify(rule, combined)
	gaps, recommendations := Generate(rule, status)
	record := SynthesizeRecord(rule, status, recommendations)

	return Assessment{
		RuleID:                       rule.ID,
		Title:                        rule.Title,
		Pillar:                       rule.Pillar,
		Risk:                         rule.Risk,
		Status:                       status,
		Description:                  rule.Description,
		CurrentImplementationSummary: implementationSummary(combined),
		Gaps:                         gaps,
		Recommendations:              recommendations,
		DecisionRecord:               record,
	}
}

// implementationSummary characterizes how much implementation detail the
// combined context carries.
func implementationSummary(combined string) string {
	trimmed := strings.TrimSpace(combined)
	switch {
	case trimmed == "":
		return "No implementation details provided in context"
	case len(trimmed) > 100:
		return "Some implementation details found in provided context"
	default:
		return "Limited implementation details available"
	}
}

// documentationStatus characterizes the supplied documentation by length.
func documentationStatus(doc string) string {
	switch n := len(doc); {
	case n == 0:
		return "No documentation provided for review"
	case n > 5000:
		return "Comprehensive documentation provided"
	case n > 1000:
		return "Moderate documentation available"
	default:
		return "Limited documentation provided"
	}
}

// summaryRecommendations derives the high-level recommendation list from
// the per-rule assessments.
func summaryRecommendations(assessments []Assessment) []string {
	var high, medium int
	for _, a := range assessments {
		if a.Status == StatusCompliant {
			continue
		}
		switch a.Risk {
		case catalog.RiskHigh:
			high++
		case catalog.RiskMedium:
			medium++
		}
	}

	var recs []string
	if high > 0 {
		recs = append(recs, fmt.Sprintf("Address %d high-risk items immediately", high))
	}
	if medium > 0 {
		recs = append(recs, fmt.Sprintf("Plan to address %d medium-risk items", medium))
	}
	recs = append(recs,
		"Implement comprehensive monitoring and logging",
		"Establish regular architecture reviews",
		"Document architectural decisions and trade-offs",
	)
	return recs
}
