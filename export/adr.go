// Package export renders review results as markdown: one decision
// record file per assessed rule plus an index, and report documents
// for priorities, the Eisenhower matrix, the roadmap, and SMART
// solutions.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/archlens/archlens/catalog"
	"github.com/archlens/archlens/review"
)

var statusEmoji = map[review.Status]string{
	review.StatusCompliant:     "✅",
	review.StatusNonCompliant:  "❌",
	review.StatusNeedsReview:   "⚠️",
	review.StatusNotApplicable: "➖",
}

var riskEmoji = map[catalog.RiskLevel]string{
	catalog.RiskHigh:   "🔴",
	catalog.RiskMedium: "🟡",
	catalog.RiskLow:    "🟢",
}

// Writer writes decision record files into a directory.
type Writer struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewWriter creates a writer targeting dir. The directory is created
// on first write.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, logger: logger, now: time.Now}
}

// WriteADRs writes one decision record file per assessment plus a
// README index, returning the paths written.
func (w *Writer) WriteADRs(assessments []review.Assessment) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var written []string
	for _, a := range assessments {
		path := filepath.Join(w.dir, adrFilename(a))
		if err := os.WriteFile(path, []byte(w.FormatADR(a)), 0o644); err != nil {
			return written, fmt.Errorf("write adr %s: %w", a.RuleID, err)
		}
		w.logger.Debug("wrote decision record", "rule_id", a.RuleID, "path", path)
		written = append(written, path)
	}

	indexPath := filepath.Join(w.dir, "README.md")
	if err := os.WriteFile(indexPath, []byte(w.FormatIndex(assessments)), 0o644); err != nil {
		return written, fmt.Errorf("write adr index: %w", err)
	}
	written = append(written, indexPath)

	w.logger.Info("decision records written", "count", len(assessments), "dir", w.dir)
	return written, nil
}

// adrFilename builds the file name from the rule id and record title:
// lower-cased, spaces to hyphens, colons dropped.
func adrFilename(a review.Assessment) string {
	title := strings.ToLower(a.DecisionRecord.Title)
	title = strings.ReplaceAll(title, " ", "-")
	title = strings.ReplaceAll(title, ":", "")
	return strings.ToLower(a.RuleID) + "-" + title + ".md"
}

// FormatADR renders a single assessment as a decision record document.
func (w *Writer) FormatADR(a review.Assessment) string {
	adr := a.DecisionRecord
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", adr.Title)
	fmt.Fprintf(&sb, "**Date:** %s\n", w.now().Format("2006-01-02"))
	fmt.Fprintf(&sb, "**Status:** %s\n", adr.Status)
	fmt.Fprintf(&sb, "**Best Practice ID:** %s\n", a.RuleID)
	fmt.Fprintf(&sb, "**Pillar:** %s\n", a.Pillar.DisplayName())
	fmt.Fprintf(&sb, "**Risk Level:** %s\n", a.Risk)
	fmt.Fprintf(&sb, "**Current Status:** %s\n\n", a.Status)

	fmt.Fprintf(&sb, "## Context\n\n%s\n\n", adr.Context)
	fmt.Fprintf(&sb, "### Current Implementation Status\n%s\n\n", a.CurrentImplementationSummary)

	sb.WriteString("### Identified Gaps\n")
	writeList(&sb, a.Gaps)

	fmt.Fprintf(&sb, "\n## Decision\n\n%s\n\n", adr.Decision)

	sb.WriteString("## Consequences\n\n")
	writeList(&sb, adr.Consequences)

	sb.WriteString("\n## Trade-offs\n\n")
	for _, to := range adr.TradeOffs {
		fmt.Fprintf(&sb, "### Benefit\n%s\n\n### Cost\n%s\n\n", to.Benefit, to.Cost)
	}

	sb.WriteString("## Alternatives Considered\n\n")
	writeList(&sb, adr.Alternatives)

	notes := adr.ImplementationNotes
	if notes == "" {
		notes = "No specific implementation notes provided."
	}
	fmt.Fprintf(&sb, "\n## Implementation Notes\n\n%s\n\n", notes)

	sb.WriteString("## Recommendations\n\n")
	writeList(&sb, a.Recommendations)

	sb.WriteString("\n## Well-Architected Framework Reference\n\n")
	fmt.Fprintf(&sb, "**Pillar:** %s\n", a.Pillar.DisplayName())
	fmt.Fprintf(&sb, "**Best Practice:** %s\n", a.Title)
	fmt.Fprintf(&sb, "**Description:** %s\n\n", a.Description)
	sb.WriteString("---\n*This ADR was generated as part of a Well-Architected Framework review.*\n")

	return sb.String()
}

// FormatIndex renders the README index, grouping records by pillar
// with status and risk emoji markers.
func (w *Writer) FormatIndex(assessments []review.Assessment) string {
	var sb strings.Builder

	sb.WriteString("# Architecture Decision Records\n\n")
	fmt.Fprintf(&sb, "**Generated:** %s\n", w.now().Format("2006-01-02"))
	fmt.Fprintf(&sb, "**Total ADRs:** %d\n\n", len(assessments))
	sb.WriteString("This directory contains Architecture Decision Records (ADRs) generated from a Well-Architected Framework review.\n\n")
	sb.WriteString("## Summary by Pillar\n\n")

	// Group preserving the order pillars first appear in.
	var order []catalog.Pillar
	grouped := make(map[catalog.Pillar][]review.Assessment)
	for _, a := range assessments {
		if _, seen := grouped[a.Pillar]; !seen {
			order = append(order, a.Pillar)
		}
		grouped[a.Pillar] = append(grouped[a.Pillar], a)
	}

	for _, pillar := range order {
		fmt.Fprintf(&sb, "### %s\n\n", pillar.DisplayName())
		for _, a := range grouped[pillar] {
			fmt.Fprintf(&sb, "- [%s](./%s) %s %s\n",
				a.Title, adrFilename(a), statusEmoji[a.Status], riskEmoji[a.Risk])
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`## Legend

### Status
- ✅ Compliant
- ❌ Non-Compliant
- ⚠️ Needs Review
- ➖ Not Applicable

### Risk Level
- 🔴 High Risk
- 🟡 Medium Risk
- 🟢 Low Risk

## Usage

Each ADR file contains:
- Context and problem statement
- Architectural decision made
- Consequences and trade-offs
- Implementation recommendations
- Well-Architected Framework references

Review each ADR to understand the current state and recommended improvements for your architecture.
`)

	return sb.String()
}

func writeList(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}
