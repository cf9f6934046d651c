package sheet

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/roach88/playsheet/internal/domain"
)

// SortOrder selects how entries are ordered.
type SortOrder string

const (
	// SortFormation orders by formation group, then formation.
	SortFormation SortOrder = "formation"

	// SortRating puts the highest rated first; unrated entries last.
	SortRating SortOrder = "rating"

	// SortAdded puts the most recently added first.
	SortAdded SortOrder = "added"
)

// SortOrders lists the valid orders.
var SortOrders = []SortOrder{SortFormation, SortRating, SortAdded}

// ParseSortOrder converts user input; empty means SortFormation.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortFormation, nil
	}
	o := SortOrder(s)
	if !slices.Contains(SortOrders, o) {
		return "", fmt.Errorf("%w: sort %q must be one of %v", domain.ErrInvalidValue, s, SortOrders)
	}
	return o, nil
}

// Labels used when an entry has no formation or group.
const (
	Uncategorized = "Uncategorized"
	OtherGroup    = "Other"
)

// FilterSituation keeps the entries carrying the situation's tag.
// The "all" situation, and any situation without a tag, keeps everything.
// An id that is not a known situation is treated as a tag name.
func FilterSituation(entries []domain.Entry, situationID string) []domain.Entry {
	tag := situationID
	if s, ok := domain.LookupSituation(situationID); ok {
		tag = s.Tag
	}
	if tag == "" {
		return slices.Clone(entries)
	}

	out := []domain.Entry{}
	for _, e := range entries {
		if e.Tags.Contains(tag) {
			out = append(out, e)
		}
	}
	return out
}

// Sort returns a sorted copy of entries. Ties keep their input order.
func Sort(entries []domain.Entry, order SortOrder) []domain.Entry {
	out := slices.Clone(entries)

	switch order {
	case SortRating:
		slices.SortStableFunc(out, func(a, b domain.Entry) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortAdded:
		slices.SortStableFunc(out, func(a, b domain.Entry) int {
			return b.AddedAt.Compare(a.AddedAt)
		})
	default:
		// A Collator is not safe for concurrent use.
		col := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b domain.Entry) int {
			if c := col.CompareString(a.FormationGroup, b.FormationGroup); c != 0 {
				return c
			}
			return col.CompareString(a.Formation, b.Formation)
		})
	}
	return out
}

// Formation is the entries of one formation.
type Formation struct {
	Name    string         `json:"name"`
	Entries []domain.Entry `json:"entries"`
}

// Group is the formations of one formation group.
type Group struct {
	Name       string      `json:"name"`
	Formations []Formation `json:"formations"`
}

// GroupByFormation nests entries under formation group and formation, in
// order of first appearance. A formation belongs to the group of its first
// entry.
func GroupByFormation(entries []domain.Entry) []Group {
	var groups []Group
	groupIdx := map[string]int{}
	formationAt := map[string][2]int{}

	for _, e := range entries {
		formation := cmp.Or(e.Formation, Uncategorized)

		if at, ok := formationAt[formation]; ok {
			f := &groups[at[0]].Formations[at[1]]
			f.Entries = append(f.Entries, e)
			continue
		}

		group := cmp.Or(e.FormationGroup, OtherGroup)
		gi, ok := groupIdx[group]
		if !ok {
			gi = len(groups)
			groupIdx[group] = gi
			groups = append(groups, Group{Name: group})
		}
		g := &groups[gi]
		formationAt[formation] = [2]int{gi, len(g.Formations)}
		g.Formations = append(g.Formations, Formation{Name: formation, Entries: []domain.Entry{e}})
	}
	return groups
}

// Stats summarizes one side of the playsheet.
type Stats struct {
	Total    int `json:"total"`
	Pass     int `json:"pass"`
	Run      int `json:"run"`
	Filtered int `json:"filtered"`
}

// ComputeStats counts all entries by play type; Filtered is len(filtered).
func ComputeStats(all, filtered []domain.Entry) Stats {
	st := Stats{Total: len(all), Filtered: len(filtered)}
	for _, e := range all {
		switch e.PlayType {
		case "pass":
			st.Pass++
		case "run":
			st.Run++
		}
	}
	return st
}

// Options describes a view of the playsheet.
type Options struct {
	Situation string
	Sort      SortOrder
	Where     *Predicate
}

// View is the display-ready playsheet.
type View struct {
	Entries []domain.Entry `json:"entries"`
	Groups  []Group        `json:"groups,omitempty"`
	Stats   Stats          `json:"stats"`
}

// Build filters, sorts and groups entries. Groups are only built for
// SortFormation; the other orders are flat lists.
func Build(entries []domain.Entry, opts Options) (View, error) {
	filtered := FilterSituation(entries, opts.Situation)
	if opts.Where != nil {
		var err error
		if filtered, err = opts.Where.Filter(filtered); err != nil {
			return View{}, err
		}
	}

	order := cmp.Or(opts.Sort, SortFormation)
	sorted := Sort(filtered, order)

	v := View{
		Entries: sorted,
		Stats:   ComputeStats(entries, filtered),
	}
	if order == SortFormation {
		v.Groups = GroupByFormation(sorted)
	}
	return v, nil
}
