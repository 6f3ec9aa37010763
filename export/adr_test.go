package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/archlens/archlens/catalog"
	"github.com/archlens/archlens/review"
)

func testAssessment() review.Assessment {
	return review.Assessment{
		RuleID:                       "SEC01-BP01",
		Title:                        "Separate Workloads Using Accounts",
		Pillar:                       catalog.PillarSecurity,
		Risk:                         catalog.RiskHigh,
		Status:                       review.StatusNonCompliant,
		Description:                  "Establish common guardrails and isolation between environments.",
		CurrentImplementationSummary: "No implementation details provided in context",
		Gaps:                         []string{"No evidence of separate workloads using accounts implementation found"},
		Recommendations:              []string{"Use AWS Organizations"},
		DecisionRecord: review.DecisionRecord{
			Title:        "ADR: Separate Workloads Using Accounts Implementation",
			Status:       review.RecordProposed,
			Context:      "The Security pillar requires: Establish common guardrails and isolation between environments.",
			Decision:     "Need to implement separate workloads using accounts to meet standards",
			Consequences: []string{"Improved security posture"},
			TradeOffs: []review.TradeOff{
				{Benefit: "Better alignment with best practices", Cost: "Implementation effort and potential complexity"},
			},
			Alternatives:        []string{"Maintain status quo"},
			ImplementationNotes: "Priority: HIGH. Use AWS Organizations",
		},
	}
}

func fixedWriter(t *testing.T, dir string) *Writer {
	t.Helper()
	w := NewWriter(dir, nil)
	w.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return w
}

func TestAdrFilename(t *testing.T) {
	got := adrFilename(testAssessment())
	want := "sec01-bp01-adr-separate-workloads-using-accounts-implementation.md"
	if got != want {
		t.Errorf("adrFilename() = %q, want %q", got, want)
	}
}

func TestFormatADR(t *testing.T) {
	w := fixedWriter(t, t.TempDir())
	got := w.FormatADR(testAssessment())

	for _, want := range []string{
		"# ADR: Separate Workloads Using Accounts Implementation",
		"**Date:** 2026-03-14",
		"**Status:** Proposed",
		"**Best Practice ID:** SEC01-BP01",
		"**Pillar:** Security",
		"**Risk Level:** HIGH",
		"**Current Status:** NON_COMPLIANT",
		"## Context",
		"### Identified Gaps\n- No evidence of separate workloads using accounts implementation found",
		"## Decision",
		"### Benefit\nBetter alignment with best practices",
		"### Cost\nImplementation effort and potential complexity",
		"## Implementation Notes\n\nPriority: HIGH. Use AWS Organizations",
		"## Recommendations\n\n- Use AWS Organizations",
		"**Best Practice:** Separate Workloads Using Accounts",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ADR missing %q:\n%s", want, got)
		}
	}
}

func TestFormatADR_EmptyNotesPlaceholder(t *testing.T) {
	w := fixedWriter(t, t.TempDir())
	a := testAssessment()
	a.DecisionRecord.ImplementationNotes = ""

	got := w.FormatADR(a)
	if !strings.Contains(got, "No specific implementation notes provided.") {
		t.Errorf("missing notes placeholder:\n%s", got)
	}
}

func TestFormatIndex(t *testing.T) {
	w := fixedWriter(t, t.TempDir())
	sec := testAssessment()
	rel := testAssessment()
	rel.RuleID = "REL01-BP01"
	rel.Title = "Manage Service Quotas"
	rel.Pillar = catalog.PillarReliability
	rel.Risk = catalog.RiskMedium
	rel.Status = review.StatusCompliant
	rel.DecisionRecord.Title = "ADR: Manage Service Quotas Implementation"

	got := w.FormatIndex([]review.Assessment{sec, rel})

	if !strings.Contains(got, "**Total ADRs:** 2") {
		t.Errorf("missing total:\n%s", got)
	}
	if !strings.Contains(got, "### Security") || !strings.Contains(got, "### Reliability") {
		t.Errorf("missing pillar groups:\n%s", got)
	}
	if !strings.Contains(got, "❌ 🔴") {
		t.Errorf("missing non-compliant high-risk markers:\n%s", got)
	}
	if !strings.Contains(got, "✅ 🟡") {
		t.Errorf("missing compliant medium-risk markers:\n%s", got)
	}
	if !strings.Contains(got, "- ✅ Compliant") || !strings.Contains(got, "- 🔴 High Risk") {
		t.Errorf("missing legend:\n%s", got)
	}
	if strings.Index(got, "### Security") > strings.Index(got, "### Reliability") {
		t.Error("pillar groups out of first-seen order")
	}
}

func TestWriteADRs(t *testing.T) {
	dir := t.TempDir()
	w := fixedWriter(t, dir)

	paths, err := w.WriteADRs([]review.Assessment{testAssessment()})
	if err != nil {
		t.Fatalf("WriteADRs() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2 (adr + index)", len(paths))
	}

	if filepath.Base(paths[len(paths)-1]) != "README.md" {
		t.Errorf("last path = %s, want README.md", paths[len(paths)-1])
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output file %s: %v", path, err)
		}
	}
}

func TestWriteADRs_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "adrs", "nested")
	w := fixedWriter(t, dir)

	if _, err := w.WriteADRs(nil); err != nil {
		t.Fatalf("WriteADRs() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "README.md")); err != nil {
		t.Errorf("index not written: %v", err)
	}
}
