package review

import (
	"strings"

	"github.com/archlens/archlens/catalog"
)

// Compliance thresholds: the fraction of a rule's keywords that must
// appear in the context text.
const (
	compliantRatio   = 0.7
	needsReviewRatio = 0.3
)

// Classifier maps (rule, context text) to a compliance status by
// case-insensitive keyword matching. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	keywords KeywordTable
}

// NewClassifier creates a classifier over the given keyword table.
func NewClassifier(keywords KeywordTable) *Classifier {
	return &Classifier{keywords: keywords}
}

// Classify returns the compliance status for a rule given context text.
//
// Rules requiring external input always classify as NEEDS_REVIEW: they
// can only be judged once a human answers the rule's question set. For
// all other rules the verdict is the fraction of the rule's keywords
// found as substrings of the lower-cased context. A rule with no keyword
// entry never divides by zero; it classifies as NON_COMPLIANT.
func (c *Classifier) Classify(rule catalog.Rule, contextText string) Status {
	if rule.RequiresExternalInput {
		return StatusNeedsReview
	}

	keywords := c.keywords.Lookup(rule.QuestionPrefix())
	if len(keywords) == 0 {
		return StatusNonCompliant
	}

	content := strings.ToLower(contextText)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			matches++
		}
	}

	ratio := float64(matches) / float64(len(keywords))
	switch {
	case ratio >= compliantRatio:
		return StatusCompliant
	case ratio >= needsReviewRatio:
		return StatusNeedsReview
	default:
		return StatusNonCompliant
	}
}
