package catalog

import (
	"github.com/roach88/playsheet/internal/domain"
)

// Category separates team playbooks from alternate (scheme) playbooks.
type Category string

const (
	CategoryTeam      Category = "team"
	CategoryAlternate Category = "alternate"
)

// Document is the wire shape of the catalog resource.
type Document struct {
	Playbooks []*Playbook `json:"playbooks"`
}

// Playbook is the root of one branch of the catalog.
// Side is encoded as "type" in the catalog resource.
type Playbook struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Side            domain.Side       `json:"type"`
	Category        Category          `json:"category"`
	FormationGroups []*FormationGroup `json:"formationGroups"`
}

// FormationGroup groups related formations ("Gun", "Singleback").
type FormationGroup struct {
	Name       string       `json:"name"`
	Formations []*Formation `json:"formations"`
}

// Formation holds the plays run out of one alignment.
// Slug is unique within its playbook.
type Formation struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Plays []Play `json:"plays"`
}

// Play is a catalog item. ID is unique across the whole catalog.
// Type is run/pass for offense and a defense-specific taxonomy otherwise.
type Play struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// PlayRef is a play denormalized with its ancestor path.
type PlayRef struct {
	Play
	PlaybookID         string      `json:"playbook_id"`
	PlaybookName       string      `json:"playbook_name"`
	Side               domain.Side `json:"side"`
	FormationGroupName string      `json:"formation_group_name"`
	FormationName      string      `json:"formation_name"`
	FormationSlug      string      `json:"formation_slug"`
}

// NewEntry converts the reference into the fields of a playsheet add.
func (r PlayRef) NewEntry() domain.NewEntry {
	return domain.NewEntry{
		PlayID:         r.ID,
		Playbook:       r.PlaybookName,
		FormationGroup: r.FormationGroupName,
		Formation:      r.FormationName,
		PlayName:       r.Name,
		PlayType:       r.Type,
	}
}

// PlayCount returns the number of plays in the playbook.
func (pb *Playbook) PlayCount() int {
	n := 0
	for _, g := range pb.FormationGroups {
		for _, f := range g.Formations {
			n += len(f.Plays)
		}
	}
	return n
}

// Formation finds a formation by slug.
func (pb *Playbook) Formation(slug string) (*FormationGroup, *Formation, bool) {
	for _, g := range pb.FormationGroups {
		for _, f := range g.Formations {
			if f.Slug == slug {
				return g, f, true
			}
		}
	}
	return nil, nil, false
}
