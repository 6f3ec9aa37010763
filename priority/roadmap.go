package priority

// Phase metadata, fixed per phase number.
var phaseInfo = []struct {
	name        string
	description string
}{
	{"Critical Foundations (Weeks 1-2)", "Focus on highest risk and most foundational practices"},
	{"Core Improvements (Weeks 3-6)", "Build on foundations with these important practices"},
	{"Advanced Optimization (Weeks 7+)", "Complete the improvements with these practices"},
}

// BuildRoadmap splits rank-ordered items into three phases at the
// configured boundaries, preserving rank order within each phase. Phases
// left empty by a short input are omitted.
func (a *Analyzer) BuildRoadmap(items []Item) Roadmap {
	one := a.config.PhaseOneSize
	two := a.config.PhaseTwoEnd

	slices := [3][]Item{}
	if len(items) <= one {
		slices[0] = items
	} else if len(items) <= two {
		slices[0] = items[:one]
		slices[1] = items[one:]
	} else {
		slices[0] = items[:one]
		slices[1] = items[one:two]
		slices[2] = items[two:]
	}

	var roadmap Roadmap
	for i, phaseItems := range slices {
		if len(phaseItems) == 0 {
			continue
		}
		roadmap.Phases = append(roadmap.Phases, Phase{
			Number:      i + 1,
			Name:        phaseInfo[i].name,
			Description: phaseInfo[i].description,
			Items:       phaseItems,
		})
	}
	return roadmap
}
