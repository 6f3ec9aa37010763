package catalog

import "strings"

// Rule is a single architectural best practice. Rules are immutable once
// loaded; all engine components treat them as read-only shared data.
type Rule struct {
	// ID is the unique rule identifier, e.g. "SEC01-BP02". Some legacy
	// rules carry a short id without a practice suffix, e.g. "COST01".
	ID string `yaml:"id" json:"id"`

	// Title is the short human-readable rule name.
	Title string `yaml:"title" json:"title"`

	// Pillar is filled from the enclosing data file during load.
	Pillar Pillar `yaml:"-" json:"pillar"`

	// Area groups rules within a pillar, e.g. "Observability".
	Area string `yaml:"area" json:"area,omitempty"`

	// Description states what the rule asks for.
	Description string `yaml:"description" json:"description"`

	// Risk is the exposure carried by not implementing the rule.
	Risk RiskLevel `yaml:"risk" json:"risk"`

	// RequiresExternalInput marks rules that cannot be judged from
	// context text alone; they always classify as NEEDS_REVIEW until a
	// human answers the rule's questions.
	RequiresExternalInput bool `yaml:"requires_input" json:"requiresExternalInput,omitempty"`

	// Questions are the assessment questions for the rule, in order.
	Questions []string `yaml:"questions" json:"questions"`

	// Guidance holds the ordered implementation guidance entries.
	Guidance []string `yaml:"guidance" json:"guidance"`

	// Related lists ids of related rules. Entries may reference rules
	// outside the loaded catalog.
	Related []string `yaml:"related" json:"related,omitempty"`

	// URL points at the upstream reference documentation, if any.
	URL string `yaml:"url" json:"url,omitempty"`
}

// QuestionPrefix returns the question-level id prefix, the segment before
// the first '-': "SEC01-BP02" yields "SEC01", "COST01" yields "COST01".
func (r Rule) QuestionPrefix() string {
	if i := strings.Index(r.ID, "-"); i >= 0 {
		return r.ID[:i]
	}
	return r.ID
}

// PillarPrefix returns the leading alphabetic segment of the id:
// "SEC01-BP02" yields "SEC".
func (r Rule) PillarPrefix() string {
	for i := 0; i < len(r.ID); i++ {
		if r.ID[i] >= '0' && r.ID[i] <= '9' {
			return r.ID[:i]
		}
	}
	return r.ID
}

// Foundational reports whether the rule is a foundational practice,
// identified by a -BP01 or -BP02 id suffix.
func (r Rule) Foundational() bool {
	return strings.HasSuffix(r.ID, "-BP01") || strings.HasSuffix(r.ID, "-BP02")
}
