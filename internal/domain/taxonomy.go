package domain

// SituationTag is a named, colored label from the fixed tag catalog.
// Free-text tags outside the catalog are allowed everywhere a tag is.
type SituationTag struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// SituationTags is the fixed tag catalog, universal tags first.
var SituationTags = []SituationTag{
	{"money", "green", "Go-to play that works"},
	{"red zone", "red", "Inside the 20"},
	{"3rd down", "yellow", "Third down conversion/stop"},
	{"goal line", "purple", "Inside the 5"},
	{"2 min", "blue", "Two-minute drill"},
	{"opener", "cyan", "Good first play"},
	{"3rd & long", "orange", "3rd and 7+"},
	{"3rd & short", "amber", "3rd and 3 or less"},

	{"man beater", "teal", "Beats man coverage"},
	{"zone beater", "lime", "Beats zone coverage"},
	{"quick pass", "sky", "Fast release, beat blitz"},
	{"deep shot", "violet", "Take a shot downfield"},

	{"blitz", "pink", "Bring extra pressure"},
	{"heat", "rose", "Gets quick pressure"},
	{"nano", "fuchsia", "Nano/glitch blitz"},
	{"contain", "orange", "QB contain"},
	{"spy", "amber", "QB spy assignment"},

	{"run stop", "stone", "Stop the run"},
	{"prevent", "indigo", "Prevent big plays"},
	{"user play", "emerald", "Good for user lurk"},
	{"lock down", "slate", "Shuts down routes"},

	{"vs bunch", "red", "Good vs bunch formations"},
	{"vs trips", "red", "Good vs trips formations"},
	{"vs empty", "rose", "Good vs empty sets"},
	{"vs spread", "pink", "Good vs spread offense"},
	{"vs motion", "purple", "Handles motion well"},
	{"vs RPO", "violet", "Good vs RPO plays"},
}

// LookupSituationTag finds a catalog tag by exact name.
func LookupSituationTag(name string) (SituationTag, bool) {
	for _, t := range SituationTags {
		if t.Name == name {
			return t, true
		}
	}
	return SituationTag{}, false
}

// Situation is a playsheet filter tab. Tabs double as drop targets: dropping
// plays on a tab assigns its Tag. The "all" tab has no tag.
type Situation struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tag   string `json:"tag,omitempty"`
	Color string `json:"color"`
}

// Assignable reports whether dropping on the situation assigns a tag.
func (s Situation) Assignable() bool {
	return s.Tag != ""
}

// SituationAll is the "show everything" pseudo-target.
const SituationAll = "all"

// Situations lists the playsheet tabs in display order.
var Situations = []Situation{
	{SituationAll, "All", "", "gray"},
	{"1st-down", "1st Down", "opener", "cyan"},
	{"3rd-down", "3rd Down", "3rd down", "yellow"},
	{"red-zone", "Red Zone", "red zone", "red"},
	{"goal-line", "Goal Line", "goal line", "purple"},
	{"2-min", "2 Minute", "2 min", "blue"},
	{"money", "Money", "money", "green"},
}

// LookupSituation finds a tab by id.
func LookupSituation(id string) (Situation, bool) {
	for _, s := range Situations {
		if s.ID == id {
			return s, true
		}
	}
	return Situation{}, false
}
