package domain

import (
	"fmt"
	"time"
)

// MaxRating is the highest star rating an entry can carry.
const MaxRating = 5

// Entry is a play the user has put on the playsheet.
//
// PlayID is a soft reference to a catalog play; the store never checks it.
// Side is empty for rows written before the side column existed.
// Rating 0 means "not rated".
type Entry struct {
	ID                   int64                 `json:"id"`
	PlayID               string                `json:"play_id"`
	Playbook             string                `json:"playbook"`
	FormationGroup       string                `json:"formation_group"`
	Formation            string                `json:"formation"`
	PlayName             string                `json:"play_name"`
	PlayType             string                `json:"play_type"`
	Side                 Side                  `json:"side,omitempty"`
	Tags                 TagSet                `json:"tags"`
	Notes                string                `json:"notes"`
	Rating               int                   `json:"rating,omitempty"`
	AddedAt              time.Time             `json:"added_at"`
	DefensiveAdjustments *DefensiveAdjustments `json:"defensive_adjustments,omitempty"`
}

// HasRating reports whether the entry has been rated.
func (e Entry) HasRating() bool {
	return e.Rating > 0
}

// NewEntry holds the caller-supplied fields of an add operation.
// Everything else (id, added_at, notes, rating) is assigned by the store.
type NewEntry struct {
	PlayID         string
	Playbook       string
	FormationGroup string
	Formation      string
	PlayName       string
	PlayType       string
	Tags           TagSet
}

// Patch describes a partial update of an Entry. Nil fields are left
// untouched. ID and AddedAt are immutable and have no patch field.
//
// Rating accepts 0 to clear the rating. ClearAdjustments removes any stored
// defensive adjustments and wins over DefensiveAdjustments.
type Patch struct {
	PlayID               *string
	Playbook             *string
	FormationGroup       *string
	Formation            *string
	PlayName             *string
	PlayType             *string
	Side                 *Side
	Tags                 *TagSet
	Notes                *string
	Rating               *int
	DefensiveAdjustments *DefensiveAdjustments
	ClearAdjustments     bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.PlayID == nil && p.Playbook == nil && p.FormationGroup == nil &&
		p.Formation == nil && p.PlayName == nil && p.PlayType == nil &&
		p.Side == nil && p.Tags == nil && p.Notes == nil && p.Rating == nil &&
		p.DefensiveAdjustments == nil && !p.ClearAdjustments
}

// Validate checks the values carried by the patch.
func (p Patch) Validate() error {
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > MaxRating) {
		return fmt.Errorf("%w: rating %d must be between 1 and %d (0 clears)", ErrInvalidValue, *p.Rating, MaxRating)
	}
	if p.Side != nil && !p.Side.Valid() {
		return fmt.Errorf("%w: side %q must be one of %v", ErrInvalidValue, *p.Side, Sides)
	}
	if p.DefensiveAdjustments != nil && !p.ClearAdjustments {
		if err := p.DefensiveAdjustments.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns e with the patch merged in.
func (p Patch) Apply(e Entry) Entry {
	setString(&e.PlayID, p.PlayID)
	setString(&e.Playbook, p.Playbook)
	setString(&e.FormationGroup, p.FormationGroup)
	setString(&e.Formation, p.Formation)
	setString(&e.PlayName, p.PlayName)
	setString(&e.PlayType, p.PlayType)
	setString(&e.Notes, p.Notes)
	if p.Side != nil {
		e.Side = *p.Side
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
	switch {
	case p.ClearAdjustments:
		e.DefensiveAdjustments = nil
	case p.DefensiveAdjustments != nil:
		adj := *p.DefensiveAdjustments
		e.DefensiveAdjustments = &adj
	}
	return e
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
