package export

import (
	"fmt"
	"strings"

	"github.com/archlens/archlens/catalog"
	"github.com/archlens/archlens/priority"
	"github.com/archlens/archlens/solution"
)

const quadrantPreview = 5

// Reporter renders prioritization output as markdown reports. It holds
// the catalog to resolve related rule ids to titles.
type Reporter struct {
	catalog *catalog.Catalog
}

// NewReporter creates a reporter over the given catalog.
func NewReporter(c *catalog.Catalog) *Reporter {
	return &Reporter{catalog: c}
}

// PriorityReport renders ranked priority items with their rationale,
// questions, guidance, and related practices.
func (r *Reporter) PriorityReport(items []priority.Item) string {
	if len(items) == 0 {
		return "No priority items to display."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Top %d Priority Recommendations\n\n", len(items))

	for _, item := range items {
		rule := item.Rule
		fmt.Fprintf(&sb, "## %d. %s\n", item.Rank, rule.Title)
		fmt.Fprintf(&sb, "**Pillar**: %s  \n", rule.Pillar.DisplayName())
		fmt.Fprintf(&sb, "**Risk Level**: %s  \n", strings.ToUpper(string(rule.Risk)))
		fmt.Fprintf(&sb, "**Priority Score**: %d\n\n", item.Score)

		fmt.Fprintf(&sb, "### Why This Matters\n%s\n\n", item.Reason)
		fmt.Fprintf(&sb, "### Description\n%s\n\n", rule.Description)

		sb.WriteString("### Key Questions to Address\n")
		writeList(&sb, rule.Questions)

		sb.WriteString("\n### Implementation Guidance\n")
		writeList(&sb, rule.Guidance)

		if len(item.Related) > 0 {
			sb.WriteString("\n### Related Practices to Consider\n")
			sb.WriteString("These practices work together and should be implemented in coordination:\n")
			for _, id := range item.Related {
				fmt.Fprintf(&sb, "- **%s**: %s\n", id, r.ruleTitle(id))
			}
		}

		sb.WriteString("\n---\n\n")
	}

	return sb.String()
}

// RoadmapReport renders the phased roadmap with implementation tips.
func (r *Reporter) RoadmapReport(roadmap priority.Roadmap) string {
	if len(roadmap.Phases) == 0 {
		return "No items to create roadmap."
	}

	var sb strings.Builder
	sb.WriteString("# Implementation Roadmap\n\n")

	for _, phase := range roadmap.Phases {
		fmt.Fprintf(&sb, "## Phase %d: %s\n", phase.Number, phase.Name)
		fmt.Fprintf(&sb, "%s:\n\n", phase.Description)
		for _, item := range phase.Items {
			fmt.Fprintf(&sb, "- **%s**: %s\n", item.Rule.ID, item.Rule.Title)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`## Implementation Tips
- Start with Phase 1 items as they often enable or simplify later phases
- Consider related practices together for maximum impact
- Validate each implementation before moving to the next phase
- Adjust timeline based on your team's capacity and complexity
`)

	return sb.String()
}

// MatrixReport renders the Eisenhower matrix as an action plan plus a
// distribution summary.
func (r *Reporter) MatrixReport(matrix priority.Matrix) string {
	var sb strings.Builder
	sb.WriteString("# Eisenhower Matrix - Well-Architected Priorities\n\n")
	sb.WriteString("## Action Plan\n\n")

	quadrants := []struct {
		emoji string
		label string
		items []priority.MatrixItem
	}{
		{"🔥", "DO FIRST - Urgent & Important", matrix.DoFirst},
		{"📅", "SCHEDULE - Important but Not Urgent", matrix.Schedule},
		{"⚡", "DELEGATE - Urgent but Not Important", matrix.Delegate},
		{"🗑️", "ELIMINATE - Neither Urgent nor Important", matrix.Eliminate},
	}

	for _, q := range quadrants {
		fmt.Fprintf(&sb, "### %s %s (%d items)\n", q.emoji, q.label, len(q.items))
		sb.WriteString(quadrantItems(q.items, quadrantPreview))
		sb.WriteString("\n\n")
	}

	total := matrix.Total()
	if total == 0 {
		return sb.String()
	}

	sb.WriteString("## Matrix Summary\n\n")
	fmt.Fprintf(&sb, "**Total Best Practices Analyzed**: %d\n\n", total)
	sb.WriteString("**Distribution**:\n")
	for _, q := range quadrants {
		pct := float64(len(q.items)) / float64(total) * 100
		fmt.Fprintf(&sb, "- %s **%s**: %d items (%.1f%%)\n",
			q.emoji, strings.SplitN(q.label, " - ", 2)[0], len(q.items), pct)
	}
	sb.WriteString("\n**Recommendation**: Focus on DO FIRST items immediately, then schedule IMPORTANT items for systematic implementation.\n")

	return sb.String()
}

// SmartGuide renders SMART solutions as an implementation guide.
func (r *Reporter) SmartGuide(solutions []solution.Smart) string {
	if len(solutions) == 0 {
		return "No solutions to display."
	}

	var sb strings.Builder
	sb.WriteString("# SMART Implementation Solutions\n\n")

	for i, sol := range solutions {
		fmt.Fprintf(&sb, "## %d. %s\n\n", i+1, sol.RuleID)

		sb.WriteString("### SMART Criteria\n")
		fmt.Fprintf(&sb, "- **Specific**: %s\n", sol.Specific)
		fmt.Fprintf(&sb, "- **Measurable**: %s\n", sol.Measurable)
		fmt.Fprintf(&sb, "- **Achievable**: %s\n", sol.Achievable)
		fmt.Fprintf(&sb, "- **Relevant**: %s\n", sol.Relevant)
		fmt.Fprintf(&sb, "- **Time-bound**: %s\n\n", sol.TimeBound)

		sb.WriteString("### Solution Characteristics\n")
		fmt.Fprintf(&sb, "- **Owner**: %s\n", sol.Owner)
		fmt.Fprintf(&sb, "- **Complexity**: %s\n", sol.Complexity)
		fmt.Fprintf(&sb, "- **Business Impact**: %s\n", sol.BusinessImpact)
		fmt.Fprintf(&sb, "- **Two-way Door**: %s\n", yesNo(sol.Reversible))
		fmt.Fprintf(&sb, "- **Pattern Reference**: %s\n\n", orNA(sol.PatternReference))

		sb.WriteString("### Implementation Details\n")
		sb.WriteString("**Prerequisites**:\n")
		writeList(&sb, sol.Prerequisites)
		sb.WriteString("\n**Success Criteria**:\n")
		writeList(&sb, sol.SuccessCriteria)
		fmt.Fprintf(&sb, "\n**Rollback Plan**: %s\n\n---\n\n", sol.RollbackPlan)
	}

	return sb.String()
}

// quadrantItems lists up to max items, truncating long titles and
// noting the overflow count.
func quadrantItems(items []priority.MatrixItem, max int) string {
	if len(items) == 0 {
		return "No items"
	}

	var sb strings.Builder
	for i, item := range items {
		if i >= max {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(items)-max)
			break
		}
		title := item.Rule.Title
		if len(title) > 40 {
			title = title[:40] + "..."
		}
		fmt.Fprintf(&sb, "• %s: %s\n", item.Rule.ID, title)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *Reporter) ruleTitle(id string) string {
	rule, err := r.catalog.Lookup(id)
	if err != nil {
		return id
	}
	return rule.Title
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
