package review

import (
	"fmt"
	"strings"

	"github.com/archlens/archlens/catalog"
)

// Decision record statuses.
const (
	RecordProposed = "Proposed"
	RecordAccepted = "Accepted"
)

// SynthesizeRecord builds the decision record for an assessed rule.
// The output is fully determined by its inputs; calling it twice with
// the same arguments yields identical records.
func SynthesizeRecord(rule catalog.Rule, status Status, recommendations []string) DecisionRecord {
	record := DecisionRecord{
		Title: fmt.Sprintf("ADR: %s Implementation", rule.Title),
	}

	if status == StatusCompliant {
		record.Status = RecordAccepted
		record.Decision = fmt.Sprintf("Implement %s according to best practices", rule.Title)
	} else {
		record.Status = RecordProposed
		record.Decision = fmt.Sprintf("Need to implement %s to meet standards", rule.Title)
	}

	pillarName := rule.Pillar.DisplayName()
	record.Context = fmt.Sprintf("The %s pillar requires: %s", pillarName, rule.Description)

	record.Consequences = []string{
		fmt.Sprintf("Improved %s posture", strings.ToLower(pillarName)),
		"Better alignment with architectural best practices",
		"Reduced operational risk",
	}

	// Canned trade-offs: a deliberate simplification, identical per rule.
	record.TradeOffs = []TradeOff{
		{
			Benefit: "Improved system reliability and maintainability",
			Cost:    "Initial implementation effort and potential complexity",
		},
		{
			Benefit: "Better compliance with industry standards",
			Cost:    "Ongoing operational overhead for maintenance",
		},
	}

	record.Alternatives = []string{
		"Continue with current implementation (not recommended)",
		"Implement a minimal version of the best practice",
		"Full implementation according to published guidance (recommended)",
	}

	notes := fmt.Sprintf("Priority: %s.", rule.Risk)
	if lead := firstN(recommendations, 2); len(lead) > 0 {
		notes += " " + strings.Join(lead, " ")
	}
	record.ImplementationNotes = notes

	return record
}
