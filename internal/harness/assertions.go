package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/selection"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion %s failed: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

// EvaluateAssertions checks every assertion against the final state in
// result and the engine, and returns a message per failure.
func EvaluateAssertions(result *Result, eng *selection.Engine, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluate(result, eng, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return failures
}

func evaluate(result *Result, eng *selection.Engine, a Assertion) error {
	switch a.Type {
	case AssertEntry:
		return assertEntry(result.Entries, a)
	case AssertAbsent:
		if _, ok := findEntry(result.Entries, a.ID); ok {
			return &AssertionError{Type: a.Type, Expected: fmt.Sprintf("no entry #%d", a.ID), Actual: "entry present"}
		}
		return nil
	case AssertCount:
		return assertCount(result.Entries, a)
	case AssertSelection:
		return assertSelection(eng, a)
	case AssertContext:
		return assertContext(result.GameContext, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func findEntry(entries []domain.Entry, id int64) (domain.Entry, bool) {
	i := slices.IndexFunc(entries, func(e domain.Entry) bool { return e.ID == id })
	if i < 0 {
		return domain.Entry{}, false
	}
	return entries[i], true
}

// assertEntry checks the fields the assertion sets. Tags must match exactly,
// in order; an empty tags list is not checked.
func assertEntry(entries []domain.Entry, a Assertion) error {
	e, ok := findEntry(entries, a.ID)
	if !ok {
		return &AssertionError{Type: a.Type, Expected: fmt.Sprintf("entry #%d", a.ID), Actual: "not found"}
	}

	var mismatches []string
	if a.Tags != nil && !slices.Equal(e.Tags.Slice(), a.Tags) {
		mismatches = append(mismatches, fmt.Sprintf("tags %v, want %v", e.Tags.Slice(), a.Tags))
	}
	if a.Rating != nil && e.Rating != *a.Rating {
		mismatches = append(mismatches, fmt.Sprintf("rating %d, want %d", e.Rating, *a.Rating))
	}
	if a.Notes != nil && e.Notes != *a.Notes {
		mismatches = append(mismatches, fmt.Sprintf("notes %q, want %q", e.Notes, *a.Notes))
	}
	if a.Side != "" && string(e.Side) != a.Side {
		mismatches = append(mismatches, fmt.Sprintf("side %s, want %s", e.Side, a.Side))
	}

	if len(mismatches) > 0 {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("entry #%d as asserted", a.ID),
			Actual:   strings.Join(mismatches, "; "),
		}
	}
	return nil
}

func assertCount(entries []domain.Entry, a Assertion) error {
	n := 0
	for _, e := range entries {
		if a.Side == "" || string(e.Side) == a.Side {
			n++
		}
	}
	if n != *a.Count {
		scope := "entries"
		if a.Side != "" {
			scope = a.Side + " entries"
		}
		return &AssertionError{Type: a.Type, Expected: fmt.Sprintf("%d %s", *a.Count, scope), Actual: fmt.Sprintf("%d", n)}
	}
	return nil
}

func assertSelection(eng *selection.Engine, a Assertion) error {
	state := eng.State().String()
	marked := eng.Marked()
	want := a.Marked
	if want == nil {
		want = []int64{}
	}
	if marked == nil {
		marked = []int64{}
	}
	if state != a.State || !slices.Equal(marked, want) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("state=%s marks=%v", a.State, want),
			Actual:   fmt.Sprintf("state=%s marks=%v", state, marked),
		}
	}
	return nil
}

func assertContext(g domain.GameContext, a Assertion) error {
	ok := (a.Down == nil || g.Down == *a.Down) &&
		(a.Distance == nil || g.Distance == *a.Distance) &&
		(a.Position == "" || g.FieldPosition() == a.Position)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: describeAssertedContext(a),
			Actual:   describeContext(g),
		}
	}
	return nil
}

func describeAssertedContext(a Assertion) string {
	var parts []string
	if a.Down != nil {
		parts = append(parts, fmt.Sprintf("down %d", *a.Down))
	}
	if a.Distance != nil {
		parts = append(parts, fmt.Sprintf("distance %d", *a.Distance))
	}
	if a.Position != "" {
		parts = append(parts, "at "+a.Position)
	}
	return strings.Join(parts, ", ")
}
