package priority

import (
	"testing"

	"github.com/archlens/archlens/catalog"
)

func TestUrgency(t *testing.T) {
	tests := []struct {
		name string
		rule catalog.Rule
		want int
	}{
		{
			name: "high risk reliability clamps at ten",
			rule: catalog.Rule{Risk: catalog.RiskHigh, Pillar: catalog.PillarReliability},
			want: 10,
		},
		{
			name: "high risk security clamps at ten",
			rule: catalog.Rule{Risk: catalog.RiskHigh, Pillar: catalog.PillarSecurity},
			want: 10,
		},
		{
			name: "high risk other pillar",
			rule: catalog.Rule{Risk: catalog.RiskHigh, Pillar: catalog.PillarCostOptimization},
			want: 8,
		},
		{
			name: "medium risk security",
			rule: catalog.Rule{Risk: catalog.RiskMedium, Pillar: catalog.PillarSecurity},
			want: 7,
		},
		{
			name: "low risk sustainability",
			rule: catalog.Rule{Risk: catalog.RiskLow, Pillar: catalog.PillarSustainability},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Urgency(tt.rule); got != tt.want {
				t.Errorf("Urgency() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestImportance(t *testing.T) {
	t.Run("foundational security with many relations clamps at ten", func(t *testing.T) {
		rule := catalog.Rule{ID: "SEC01-BP01", Pillar: catalog.PillarSecurity}
		got := Importance(rule, []string{"a", "b", "c", "d", "e", "f"})
		if got != 10 {
			t.Errorf("Importance() = %d, want 10 (4 foundational + 4 capped related + 4 pillar, clamped)", got)
		}
	})

	t.Run("related contribution capped at four", func(t *testing.T) {
		rule := catalog.Rule{ID: "SUS99", Pillar: catalog.PillarSustainability}
		if got := Importance(rule, []string{"a", "b", "c", "d", "e"}); got != 5 {
			t.Errorf("Importance() = %d, want 5 (capped related 4 + pillar 1)", got)
		}
	})

	t.Run("bare low-importance rule", func(t *testing.T) {
		rule := catalog.Rule{ID: "SUS99", Pillar: catalog.PillarSustainability}
		if got := Importance(rule, nil); got != 1 {
			t.Errorf("Importance() = %d, want 1", got)
		}
	})
}

func TestBuildMatrix(t *testing.T) {
	a := newAnalyzer(t)
	matrix := a.BuildMatrix(nil)

	c, _ := catalog.Load()
	if matrix.Total() != c.Len() {
		t.Errorf("matrix holds %d items, want %d", matrix.Total(), c.Len())
	}

	t.Run("quadrant assignment respects thresholds", func(t *testing.T) {
		cfg := DefaultConfig()
		check := func(items []MatrixItem, urgent, important bool) {
			for _, item := range items {
				if (item.Urgency >= cfg.UrgentThreshold) != urgent {
					t.Errorf("rule %s urgency %d misplaced in %s", item.Rule.ID, item.Urgency, item.Quadrant)
				}
				if (item.Importance >= cfg.ImportantThreshold) != important {
					t.Errorf("rule %s importance %d misplaced in %s", item.Rule.ID, item.Importance, item.Quadrant)
				}
			}
		}
		check(matrix.DoFirst, true, true)
		check(matrix.Schedule, false, true)
		check(matrix.Delegate, true, false)
		check(matrix.Eliminate, false, false)
	})

	t.Run("quadrants sorted by combined score", func(t *testing.T) {
		for _, items := range [][]MatrixItem{matrix.DoFirst, matrix.Schedule, matrix.Delegate, matrix.Eliminate} {
			for i := 1; i < len(items); i++ {
				prev := items[i-1].Urgency + items[i-1].Importance
				cur := items[i].Urgency + items[i].Importance
				if prev < cur {
					t.Errorf("quadrant not sorted: %d before %d", prev, cur)
				}
			}
		}
	})

	t.Run("axes stay in range", func(t *testing.T) {
		for _, items := range [][]MatrixItem{matrix.DoFirst, matrix.Schedule, matrix.Delegate, matrix.Eliminate} {
			for _, item := range items {
				if item.Urgency < 0 || item.Urgency > 10 || item.Importance < 0 || item.Importance > 10 {
					t.Errorf("rule %s has out-of-range axes (%d, %d)", item.Rule.ID, item.Urgency, item.Importance)
				}
			}
		}
	})

	t.Run("action text matches quadrant", func(t *testing.T) {
		for _, item := range matrix.DoFirst {
			if item.ActionText != "DO FIRST - Implement immediately" {
				t.Errorf("action text = %q", item.ActionText)
			}
		}
	})
}

func TestBuildRoadmap(t *testing.T) {
	a := newAnalyzer(t)

	makeItems := func(n int) []Item {
		items := make([]Item, n)
		for i := range items {
			items[i] = Item{Rule: catalog.Rule{ID: string(rune('A' + i))}, Rank: i + 1}
		}
		return items
	}

	t.Run("seven items split 2-3-2", func(t *testing.T) {
		roadmap := a.BuildRoadmap(makeItems(7))
		if len(roadmap.Phases) != 3 {
			t.Fatalf("phases = %d, want 3", len(roadmap.Phases))
		}
		sizes := []int{len(roadmap.Phases[0].Items), len(roadmap.Phases[1].Items), len(roadmap.Phases[2].Items)}
		if sizes[0] != 2 || sizes[1] != 3 || sizes[2] != 2 {
			t.Errorf("phase sizes = %v, want [2 3 2]", sizes)
		}
	})

	t.Run("rank order preserved within phases", func(t *testing.T) {
		roadmap := a.BuildRoadmap(makeItems(7))
		rank := 0
		for _, phase := range roadmap.Phases {
			for _, item := range phase.Items {
				rank++
				if item.Rank != rank {
					t.Errorf("phase %d item rank = %d, want %d", phase.Number, item.Rank, rank)
				}
			}
		}
	})

	t.Run("two items yields a single phase", func(t *testing.T) {
		roadmap := a.BuildRoadmap(makeItems(2))
		if len(roadmap.Phases) != 1 {
			t.Fatalf("phases = %d, want 1", len(roadmap.Phases))
		}
	})

	t.Run("four items yields two phases", func(t *testing.T) {
		roadmap := a.BuildRoadmap(makeItems(4))
		if len(roadmap.Phases) != 2 {
			t.Fatalf("phases = %d, want 2", len(roadmap.Phases))
		}
		if len(roadmap.Phases[1].Items) != 2 {
			t.Errorf("phase 2 items = %d, want 2", len(roadmap.Phases[1].Items))
		}
	})

	t.Run("empty input yields no phases", func(t *testing.T) {
		roadmap := a.BuildRoadmap(nil)
		if len(roadmap.Phases) != 0 {
			t.Errorf("phases = %d, want 0", len(roadmap.Phases))
		}
	})
}
