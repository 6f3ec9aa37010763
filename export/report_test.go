package export

import (
	"strings"
	"testing"

	"github.com/archlens/archlens/catalog"
	"github.com/archlens/archlens/priority"
	"github.com/archlens/archlens/solution"
)

func newReporter(t *testing.T) *Reporter {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return NewReporter(c)
}

func TestPriorityReport(t *testing.T) {
	r := newReporter(t)

	t.Run("empty input", func(t *testing.T) {
		if got := r.PriorityReport(nil); got != "No priority items to display." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("ranked sections", func(t *testing.T) {
		rule, err := r.catalog.Lookup("SEC01-BP01")
		if err != nil {
			t.Fatal(err)
		}
		items := []priority.Item{{
			Rule:    rule,
			Score:   18,
			Related: []string{"SEC01-BP02"},
			Reason:  "Critical security risk requiring immediate attention",
			Rank:    1,
		}}

		got := r.PriorityReport(items)
		for _, want := range []string{
			"# Top 1 Priority Recommendations",
			"## 1. " + rule.Title,
			"**Pillar**: Security",
			"**Risk Level**: HIGH",
			"**Priority Score**: 18",
			"### Why This Matters\nCritical security risk requiring immediate attention",
			"### Related Practices to Consider",
			"- **SEC01-BP02**:",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("report missing %q:\n%s", want, got)
			}
		}
	})
}

func TestRoadmapReport(t *testing.T) {
	r := newReporter(t)

	t.Run("empty input", func(t *testing.T) {
		if got := r.RoadmapReport(priority.Roadmap{}); got != "No items to create roadmap." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("phases and tips", func(t *testing.T) {
		roadmap := priority.Roadmap{Phases: []priority.Phase{
			{
				Number:      1,
				Name:        "Critical Foundations (Weeks 1-2)",
				Description: "Focus on highest risk and most foundational practices",
				Items:       []priority.Item{{Rule: catalog.Rule{ID: "SEC01-BP01", Title: "Separate Workloads Using Accounts"}}},
			},
		}}

		got := r.RoadmapReport(roadmap)
		if !strings.Contains(got, "## Phase 1: Critical Foundations (Weeks 1-2)") {
			t.Errorf("missing phase heading:\n%s", got)
		}
		if !strings.Contains(got, "- **SEC01-BP01**: Separate Workloads Using Accounts") {
			t.Errorf("missing phase item:\n%s", got)
		}
		if !strings.Contains(got, "## Implementation Tips") {
			t.Errorf("missing tips:\n%s", got)
		}
	})
}

func TestMatrixReport(t *testing.T) {
	r := newReporter(t)

	item := func(id, title string) priority.MatrixItem {
		return priority.MatrixItem{Rule: catalog.Rule{ID: id, Title: title}}
	}

	matrix := priority.Matrix{
		DoFirst: []priority.MatrixItem{
			item("SEC01-BP01", "Separate Workloads Using Accounts"),
			item("SEC01-BP02", "Secure Account Root User and Properties and More Text"),
			item("SEC02-BP01", "a"), item("SEC02-BP02", "b"),
			item("SEC02-BP03", "c"), item("SEC02-BP04", "d"),
		},
		Schedule: []priority.MatrixItem{item("OPS01-BP01", "Version Control")},
	}

	got := r.MatrixReport(matrix)

	if !strings.Contains(got, "### 🔥 DO FIRST - Urgent & Important (6 items)") {
		t.Errorf("missing do-first heading:\n%s", got)
	}
	if !strings.Contains(got, "... and 1 more") {
		t.Errorf("missing truncation marker:\n%s", got)
	}
	if !strings.Contains(got, "Secure Account Root User and Properties ...") {
		t.Errorf("long title not truncated at 40 chars:\n%s", got)
	}
	if !strings.Contains(got, "### 🗑️ ELIMINATE - Neither Urgent nor Important (0 items)\nNo items") {
		t.Errorf("empty quadrant not marked:\n%s", got)
	}
	if !strings.Contains(got, "**Total Best Practices Analyzed**: 7") {
		t.Errorf("missing summary total:\n%s", got)
	}
	if !strings.Contains(got, "(85.7%)") {
		t.Errorf("missing distribution percentage:\n%s", got)
	}
}

func TestSmartGuide(t *testing.T) {
	r := newReporter(t)

	t.Run("empty input", func(t *testing.T) {
		if got := r.SmartGuide(nil); got != "No solutions to display." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("solution sections", func(t *testing.T) {
		sol := solution.Smart{
			RuleID:           "SEC01-BP01",
			Specific:         "Implement separate workloads using accounts to enhance security posture",
			Measurable:       "Security controls implemented and validated, compliance score improved",
			Achievable:       "Low complexity implementation using existing services and tooling",
			Relevant:         "Critical for protecting business data and maintaining customer trust",
			TimeBound:        "2-4 weeks",
			Owner:            "Architecture Team",
			Complexity:       solution.ComplexityLow,
			BusinessImpact:   solution.ImpactHigh,
			Reversible:       true,
			Prerequisites:    []string{"AWS account access"},
			SuccessCriteria:  []string{"Implementation completed as designed"},
			RollbackPlan:     "Configuration can be reverted through the console or IaC templates",
			PatternReference: "",
		}

		got := r.SmartGuide([]solution.Smart{sol})
		for _, want := range []string{
			"## 1. SEC01-BP01",
			"- **Specific**: Implement separate workloads",
			"- **Time-bound**: 2-4 weeks",
			"- **Two-way Door**: Yes",
			"- **Pattern Reference**: N/A",
			"**Rollback Plan**: Configuration can be reverted",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("guide missing %q:\n%s", want, got)
			}
		}
	})
}
