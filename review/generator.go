package review

import (
	"fmt"
	"strings"

	"github.com/archlens/archlens/catalog"
)

// Generate maps a rule and its compliance status to the identified gaps
// and the recommendations for closing them. Compliant and not-applicable
// rules produce empty lists.
func Generate(rule catalog.Rule, status Status) (gaps, recommendations []string) {
	if rule.RequiresExternalInput {
		gaps = []string{
			fmt.Sprintf("Requires external input to assess %s", strings.ToLower(rule.Title)),
			"Cannot be evaluated from context or documentation alone",
			"Provide answers to the rule's question set to complete this assessment",
		}
		recommendations = []string{
			fmt.Sprintf("Answer the assessment questions for %s", rule.ID),
			"Provide detailed responses for each question",
			"Review the generated decision record and implement its recommendations",
		}
		recommendations = append(recommendations, rule.Guidance...)
		return gaps, recommendations
	}

	switch status {
	case StatusNonCompliant:
		gaps = []string{fmt.Sprintf("No evidence of %s implementation found", strings.ToLower(rule.Title))}
		for _, g := range firstN(rule.Guidance, 2) {
			gaps = append(gaps, "Missing: "+g)
		}
		recommendations = append(recommendations, rule.Guidance...)
		recommendations = append(recommendations,
			fmt.Sprintf("Review and implement %s according to best practices", rule.Title))

	case StatusNeedsReview:
		gaps = []string{
			fmt.Sprintf("Partial implementation of %s detected", strings.ToLower(rule.Title)),
			"Implementation may not follow all best practices",
		}
		recommendations = append(recommendations, rule.Guidance...)
	}

	return gaps, recommendations
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
