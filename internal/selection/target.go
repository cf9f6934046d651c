package selection

import "github.com/roach88/playsheet/internal/domain"

// Target is something a drag can be dropped on. Dropping assigns Tag; a
// target with an empty Tag accepts the drop and changes nothing.
type Target struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tag   string `json:"tag,omitempty"`
}

// Assignable reports whether dropping on the target assigns a tag.
func (t Target) Assignable() bool {
	return t.Tag != ""
}

// SituationTarget converts a playsheet tab into a drop target.
func SituationTarget(s domain.Situation) Target {
	return Target{ID: s.ID, Label: s.Label, Tag: s.Tag}
}

// TagTarget is a drop target for a single tag, catalog or free-text.
func TagTarget(tag string) Target {
	return Target{ID: tag, Label: tag, Tag: tag}
}

// TargetResolver maps a gesture's target id to a Target. It reports false
// for ids that are not drop targets.
type TargetResolver func(id string) (Target, bool)

// DefaultTargets resolves playsheet tab ids (domain.Situations) first and
// fixed tag names (domain.SituationTags) second.
func DefaultTargets(id string) (Target, bool) {
	if s, ok := domain.LookupSituation(id); ok {
		return SituationTarget(s), true
	}
	if t, ok := domain.LookupSituationTag(id); ok {
		return TagTarget(t.Name), true
	}
	return Target{}, false
}
