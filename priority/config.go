package priority

// Config holds the tunable constants of the prioritization engine. The
// defaults reproduce the canonical behavior; tests pin them by name
// instead of repeating magic numbers.
type Config struct {
	// UrgentThreshold is the minimum urgency score for an item to count
	// as urgent in the Eisenhower matrix.
	UrgentThreshold int

	// ImportantThreshold is the minimum importance score for an item to
	// count as important in the Eisenhower matrix.
	ImportantThreshold int

	// PhaseOneSize is the number of top-ranked items in roadmap phase 1.
	PhaseOneSize int

	// PhaseTwoEnd is the rank index (exclusive) where roadmap phase 2
	// ends; phase 3 takes everything after it.
	PhaseTwoEnd int
}

// DefaultConfig returns the canonical thresholds and phase boundaries.
func DefaultConfig() Config {
	return Config{
		UrgentThreshold:    6,
		ImportantThreshold: 6,
		PhaseOneSize:       2,
		PhaseTwoEnd:        5,
	}
}
