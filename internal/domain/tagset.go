package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// TagSet is an insertion-ordered, duplicate-free set of situation tags.
//
// TagSet has value semantics: every mutating method returns a new set and
// leaves the receiver untouched, so a set read from the store can be shared
// without copying. The zero value is an empty set.
//
// Tags are compared exactly after trimming surrounding whitespace; empty
// tags are dropped.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set from tags, keeping the first occurrence of each.
func NewTagSet(tags ...string) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.Add(t)
	}
	return s
}

// Len returns the number of tags.
func (s TagSet) Len() int {
	return len(s.tags)
}

// Contains reports whether tag is in the set.
func (s TagSet) Contains(tag string) bool {
	return slices.Contains(s.tags, strings.TrimSpace(tag))
}

// Add returns a set with tag appended, or s itself if tag is already present.
func (s TagSet) Add(tag string) TagSet {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(s.tags, tag) {
		return s
	}
	next := make([]string, len(s.tags), len(s.tags)+1)
	copy(next, s.tags)
	return TagSet{tags: append(next, tag)}
}

// Remove returns a set without tag.
func (s TagSet) Remove(tag string) TagSet {
	tag = strings.TrimSpace(tag)
	idx := slices.Index(s.tags, tag)
	if idx < 0 {
		return s
	}
	return TagSet{tags: slices.Delete(slices.Clone(s.tags), idx, idx+1)}
}

// Toggle removes tag if present and adds it otherwise.
func (s TagSet) Toggle(tag string) TagSet {
	if s.Contains(tag) {
		return s.Remove(tag)
	}
	return s.Add(tag)
}

// Union returns s followed by the tags of other that s does not contain.
func (s TagSet) Union(other TagSet) TagSet {
	out := s
	for _, t := range other.tags {
		out = out.Add(t)
	}
	return out
}

// Slice returns a copy of the tags in insertion order. Never nil.
func (s TagSet) Slice() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Equal reports whether both sets hold the same tags in the same order.
func (s TagSet) Equal(other TagSet) bool {
	return slices.Equal(s.tags, other.tags)
}

// String joins the tags with ", ".
func (s TagSet) String() string {
	return strings.Join(s.tags, ", ")
}

// MarshalJSON encodes the set as a JSON array; an empty set is [].
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes a JSON array, suppressing duplicates.
// A JSON null decodes to the empty set.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}
