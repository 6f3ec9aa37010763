package solution

import (
	"reflect"
	"strings"
	"testing"

	"github.com/archlens/archlens/catalog"
)

func newSynthesizer(t *testing.T) *Synthesizer {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return NewSynthesizer(c)
}

func TestAssessComplexity_OrderOfChecks(t *testing.T) {
	tests := []struct {
		name string
		rule catalog.Rule
		want Complexity
	}{
		{
			// Foundational wins even over high risk: check order matters.
			name: "foundational high-risk rule stays low",
			rule: catalog.Rule{ID: "SEC01-BP01", Risk: catalog.RiskHigh},
			want: ComplexityLow,
		},
		{
			name: "non-foundational high risk is medium",
			rule: catalog.Rule{ID: "SEC01-BP05", Risk: catalog.RiskHigh},
			want: ComplexityMedium,
		},
		{
			name: "many related rules is medium",
			rule: catalog.Rule{ID: "SEC01-BP03", Risk: catalog.RiskLow, Related: []string{"a", "b", "c", "d"}},
			want: ComplexityMedium,
		},
		{
			name: "plain rule is low",
			rule: catalog.Rule{ID: "SUS01", Risk: catalog.RiskLow},
			want: ComplexityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssessComplexity(tt.rule); got != tt.want {
				t.Errorf("AssessComplexity() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAssessImpact(t *testing.T) {
	tests := []struct {
		rule catalog.Rule
		want Impact
	}{
		{catalog.Rule{Risk: catalog.RiskHigh, Pillar: catalog.PillarSustainability}, ImpactHigh},
		{catalog.Rule{Risk: catalog.RiskLow, Pillar: catalog.PillarSecurity}, ImpactHigh},
		{catalog.Rule{Risk: catalog.RiskLow, Pillar: catalog.PillarReliability}, ImpactHigh},
		{catalog.Rule{Risk: catalog.RiskMedium, Pillar: catalog.PillarCostOptimization}, ImpactMedium},
		{catalog.Rule{Risk: catalog.RiskLow, Pillar: catalog.PillarSustainability}, ImpactLow},
	}

	for _, tt := range tests {
		if got := AssessImpact(tt.rule); got != tt.want {
			t.Errorf("AssessImpact(%s/%s) = %s, want %s", tt.rule.Risk, tt.rule.Pillar, got, tt.want)
		}
	}
}

func TestReversibility(t *testing.T) {
	s := newSynthesizer(t)

	t.Run("plain title is reversible", func(t *testing.T) {
		rule := catalog.Rule{ID: "REL03-BP03", Title: "Provide Service Contracts per API"}
		smart := s.Synthesize(rule, "")
		if !smart.Reversible {
			t.Error("expected reversible solution")
		}
		if smart.RollbackPlan != rollbackReversible {
			t.Errorf("rollback = %q, want revert sentence", smart.RollbackPlan)
		}
	})

	t.Run("architecture title is not reversible", func(t *testing.T) {
		rule := catalog.Rule{ID: "REL03-BP99", Title: "Design your workload service architecture"}
		smart := s.Synthesize(rule, "")
		if smart.Reversible {
			t.Error("expected irreversible solution")
		}
		if smart.RollbackPlan != rollbackIrreversible {
			t.Errorf("rollback = %q, want careful-planning sentence", smart.RollbackPlan)
		}
	})

	t.Run("design title is not reversible", func(t *testing.T) {
		rule := catalog.Rule{ID: "OPS04-BP01", Title: "Design Workload to Understand Its State"}
		if smart := s.Synthesize(rule, ""); smart.Reversible {
			t.Error("expected irreversible solution")
		}
	})
}

func TestSynthesize_Tables(t *testing.T) {
	s := newSynthesizer(t)

	t.Run("specific by id prefix", func(t *testing.T) {
		rule := catalog.Rule{ID: "PERF01", Title: "Select Compute Resources", Pillar: catalog.PillarPerformanceEfficiency}
		smart := s.Synthesize(rule, "")
		want := "Optimize select compute resources to enhance performance"
		if smart.Specific != want {
			t.Errorf("specific = %q, want %q", smart.Specific, want)
		}
	})

	t.Run("unknown prefix falls back", func(t *testing.T) {
		rule := catalog.Rule{ID: "XYZ01", Title: "Mystery Practice"}
		smart := s.Synthesize(rule, "")
		if smart.Specific != "Implement mystery practice" {
			t.Errorf("specific = %q", smart.Specific)
		}
		if smart.Measurable != measurableFallback {
			t.Errorf("measurable = %q, want fallback", smart.Measurable)
		}
		if smart.Relevant != relevanceFallback {
			t.Errorf("relevant = %q, want fallback", smart.Relevant)
		}
	})

	t.Run("time bound follows complexity", func(t *testing.T) {
		low := s.Synthesize(catalog.Rule{ID: "SEC09-BP01", Risk: catalog.RiskHigh}, "")
		if low.TimeBound != "2-4 weeks" {
			t.Errorf("foundational time bound = %q, want 2-4 weeks", low.TimeBound)
		}
		medium := s.Synthesize(catalog.Rule{ID: "SEC09-BP05", Risk: catalog.RiskHigh}, "")
		if medium.TimeBound != "6-12 weeks" {
			t.Errorf("medium time bound = %q, want 6-12 weeks", medium.TimeBound)
		}
	})

	t.Run("pattern reference first match wins", func(t *testing.T) {
		// Title matches both "multi-az" and "backup"; the table entry
		// for multi-az comes first and must win.
		rule := catalog.Rule{ID: "REL09-BP03", Title: "Multi-AZ Backup Strategy"}
		smart := s.Synthesize(rule, "")
		if smart.PatternReference != "https://aws.amazon.com/architecture/reference-architecture-diagrams/" {
			t.Errorf("pattern reference = %q, want multi-az entry", smart.PatternReference)
		}
	})

	t.Run("pattern reference default", func(t *testing.T) {
		rule := catalog.Rule{ID: "OPS01-BP01", Title: "Version Control All Configuration"}
		smart := s.Synthesize(rule, "")
		if smart.PatternReference != defaultPatternReference {
			t.Errorf("pattern reference = %q, want default", smart.PatternReference)
		}
	})
}

func TestSynthesize_Prerequisites(t *testing.T) {
	s := newSynthesizer(t)

	t.Run("security adds approval entry", func(t *testing.T) {
		rule := catalog.Rule{ID: "SEC01-BP05", Pillar: catalog.PillarSecurity}
		smart := s.Synthesize(rule, "")
		if len(smart.Prerequisites) != 3 || smart.Prerequisites[2] != "Security team approval" {
			t.Errorf("prerequisites = %v", smart.Prerequisites)
		}
	})

	t.Run("cost adds budget entry", func(t *testing.T) {
		rule := catalog.Rule{ID: "COST01", Pillar: catalog.PillarCostOptimization}
		smart := s.Synthesize(rule, "")
		if len(smart.Prerequisites) != 3 || smart.Prerequisites[2] != "Budget approval" {
			t.Errorf("prerequisites = %v", smart.Prerequisites)
		}
	})

	t.Run("other pillars get the base list", func(t *testing.T) {
		rule := catalog.Rule{ID: "SUS01", Pillar: catalog.PillarSustainability}
		smart := s.Synthesize(rule, "")
		if len(smart.Prerequisites) != 2 {
			t.Errorf("prerequisites = %v", smart.Prerequisites)
		}
	})
}

func TestSynthesize_Owner(t *testing.T) {
	s := newSynthesizer(t)
	rule := catalog.Rule{ID: "SUS01"}

	if smart := s.Synthesize(rule, ""); smart.Owner != DefaultOwner {
		t.Errorf("owner = %q, want %q", smart.Owner, DefaultOwner)
	}
	if smart := s.Synthesize(rule, "Platform Team"); smart.Owner != "Platform Team" {
		t.Errorf("owner = %q, want Platform Team", smart.Owner)
	}
}

func TestQuickWins(t *testing.T) {
	s := newSynthesizer(t)
	all := s.ForPillars(nil, "")
	wins := QuickWins(all)

	if len(wins) == 0 {
		t.Fatal("expected at least one quick win from the catalog")
	}
	for _, w := range wins {
		if w.Complexity != ComplexityLow {
			t.Errorf("quick win %s has complexity %s", w.RuleID, w.Complexity)
		}
		if w.BusinessImpact == ImpactLow {
			t.Errorf("quick win %s has low impact", w.RuleID)
		}
	}
}

func TestForRule(t *testing.T) {
	s := newSynthesizer(t)

	if _, err := s.ForRule("SEC01-BP01", ""); err != nil {
		t.Errorf("ForRule(SEC01-BP01) error = %v", err)
	}
	if _, err := s.ForRule("BOGUS", ""); err == nil {
		t.Error("ForRule(BOGUS) expected error")
	}
}

func TestSynthesize_Idempotent(t *testing.T) {
	s := newSynthesizer(t)
	rule := catalog.Rule{
		ID: "SEC02-BP01", Title: "Use Strong Sign-In Mechanisms",
		Pillar: catalog.PillarSecurity, Risk: catalog.RiskHigh,
		Related: []string{"SEC02-BP02", "SEC02-BP03"},
	}

	first := s.Synthesize(rule, "")
	second := s.Synthesize(rule, "")
	if !reflect.DeepEqual(first, second) {
		t.Error("Synthesize is not deterministic for identical inputs")
	}
}

func TestSpecificLowercasesTitle(t *testing.T) {
	s := newSynthesizer(t)
	rule := catalog.Rule{ID: "SEC01-BP01", Title: "Separate Workloads Using Accounts"}
	smart := s.Synthesize(rule, "")
	if !strings.Contains(smart.Specific, "separate workloads using accounts") {
		t.Errorf("specific = %q, want lower-cased title", smart.Specific)
	}
}
