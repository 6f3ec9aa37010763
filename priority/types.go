package priority

import "github.com/archlens/archlens/catalog"

// Item is a rule with its computed priority score and dense 1-based rank.
type Item struct {
	Rule    catalog.Rule `json:"rule"`
	Score   int          `json:"score"`
	Related []string     `json:"relatedRulesInSet"`
	Reason  string       `json:"rationale"`
	Rank    int          `json:"rank"`
}

// Quadrant is one of the four urgency/importance buckets.
type Quadrant string

const (
	// QuadrantDoFirst holds urgent and important items.
	QuadrantDoFirst Quadrant = "DO_FIRST"

	// QuadrantSchedule holds important but not urgent items.
	QuadrantSchedule Quadrant = "SCHEDULE"

	// QuadrantDelegate holds urgent but not important items.
	QuadrantDelegate Quadrant = "DELEGATE"

	// QuadrantEliminate holds items that are neither urgent nor important.
	QuadrantEliminate Quadrant = "ELIMINATE"
)

// quadrantActions is the fixed action recommendation per quadrant.
var quadrantActions = map[Quadrant]string{
	QuadrantDoFirst:   "DO FIRST - Implement immediately",
	QuadrantSchedule:  "SCHEDULE - Plan for implementation",
	QuadrantDelegate:  "DELEGATE - Quick wins, automate if possible",
	QuadrantEliminate: "ELIMINATE - Consider if needed",
}

// Action returns the fixed action recommendation for the quadrant.
func (q Quadrant) Action() string { return quadrantActions[q] }

// MatrixItem is a rule positioned in the Eisenhower matrix.
type MatrixItem struct {
	Rule       catalog.Rule `json:"rule"`
	Urgency    int          `json:"urgency"`
	Importance int          `json:"importance"`
	Quadrant   Quadrant     `json:"quadrant"`
	ActionText string       `json:"actionText"`
}

// Matrix groups matrix items by quadrant. Each slice is sorted
// descending by combined urgency+importance score.
type Matrix struct {
	DoFirst   []MatrixItem `json:"doFirst"`
	Schedule  []MatrixItem `json:"schedule"`
	Delegate  []MatrixItem `json:"delegate"`
	Eliminate []MatrixItem `json:"eliminate"`
}

// Total returns the number of items across all quadrants.
func (m Matrix) Total() int {
	return len(m.DoFirst) + len(m.Schedule) + len(m.Delegate) + len(m.Eliminate)
}

// Phase is one stage of the implementation roadmap.
type Phase struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// Roadmap is the phased implementation plan built from ranked items.
type Roadmap struct {
	Phases []Phase `json:"phases"`
}
