package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Scenario defines a playsheet conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is a catalog document path, relative to the scenario file.
	// Empty means the built-in sample catalog.
	Catalog string `yaml:"catalog,omitempty"`

	// TokenPrefix prefixes the sequential gesture tokens ("gesture" when
	// empty).
	TokenPrefix string `yaml:"token_prefix,omitempty"`

	// Watch lists live queries to trace: offense, defense, all, context.
	Watch []string `yaml:"watch,omitempty"`

	// Steps run in order. A failing step is recorded and the run continues.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op string `yaml:"op"`

	Play     string   `yaml:"play,omitempty"`
	ID       int64    `yaml:"id,omitempty"`
	IDs      []int64  `yaml:"ids,omitempty"`
	Tag      string   `yaml:"tag,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	Rating   *int     `yaml:"rating,omitempty"`
	Notes    *string  `yaml:"notes,omitempty"`
	Query    string   `yaml:"query,omitempty"`
	Side     string   `yaml:"side,omitempty"`
	Playbook string   `yaml:"playbook,omitempty"`
	Limit    int      `yaml:"limit,omitempty"`

	// Game context fields for set_context.
	Down     *int    `yaml:"down,omitempty"`
	Distance *int    `yaml:"distance,omitempty"`
	Field    *string `yaml:"field,omitempty"`
	Yard     *int    `yaml:"yard,omitempty"`

	// ExpectError is a substring the step's error must contain. When set,
	// a step that succeeds is a failure.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Step operations.
const (
	OpAdd            = "add"
	OpRemove         = "remove"
	OpRate           = "rate"
	OpNote           = "note"
	OpTag            = "tag"
	OpUntag          = "untag"
	OpSetContext     = "set_context"
	OpClearContext   = "clear_context"
	OpSearch         = "search"
	OpEnterSelection = "enter_selection"
	OpExitSelection  = "exit_selection"
	OpToggle         = "toggle"
	OpSelectAll      = "select_all"
	OpClearMarks     = "clear_marks"
	OpBeginDrag      = "begin_drag"
	OpDrop           = "drop"
	OpCancelDrag     = "cancel_drag"
	OpGestureStart   = "gesture_start"
	OpGestureMove    = "gesture_move"
	OpGestureEnd     = "gesture_end"
	OpGestureCancel  = "gesture_cancel"
)

var stepOps = []string{
	OpAdd, OpRemove, OpRate, OpNote, OpTag, OpUntag,
	OpSetContext, OpClearContext, OpSearch,
	OpEnterSelection, OpExitSelection, OpToggle, OpSelectAll, OpClearMarks,
	OpBeginDrag, OpDrop, OpCancelDrag,
	OpGestureStart, OpGestureMove, OpGestureEnd, OpGestureCancel,
}

// Watchable live queries.
const (
	WatchOffense = "offense"
	WatchDefense = "defense"
	WatchAll     = "all"
	WatchContext = "context"
)

// Assertion validates the final state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "entry": entry ID exists; Tags, Rating, Notes and Side match when set
	// - "absent": entry ID does not exist
	// - "count": Side (or every side when empty) holds Count entries
	// - "selection": engine State and Marked match
	// - "context": game context Down, Distance, Position match when set
	Type string `yaml:"type"`

	ID       int64    `yaml:"id,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Rating   *int     `yaml:"rating,omitempty"`
	Notes    *string  `yaml:"notes,omitempty"`
	Side     string   `yaml:"side,omitempty"`
	Count    *int     `yaml:"count,omitempty"`
	State    string   `yaml:"state,omitempty"`
	Marked   []int64  `yaml:"marked,omitempty"`
	Down     *int     `yaml:"down,omitempty"`
	Distance *int     `yaml:"distance,omitempty"`
	Position string   `yaml:"position,omitempty"`
}

// Assertion type constants.
const (
	AssertEntry     = "entry"
	AssertAbsent    = "absent"
	AssertCount     = "count"
	AssertSelection = "selection"
	AssertContext   = "context"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// A relative Catalog path is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}
	if scenario.Catalog != "" {
		if _, err := os.Stat(scenario.Catalog); err != nil {
			return nil, fmt.Errorf("invalid scenario: catalog file: %w", err)
		}
	}
	return scenario, nil
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for _, w := range s.Watch {
		switch w {
		case WatchOffense, WatchDefense, WatchAll, WatchContext:
		default:
			return fmt.Errorf("unknown watch %q", w)
		}
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}
	return nil
}

// validateStep checks the fields an operation requires.
func validateStep(index int, st *Step) error {
	if st.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}
	if !slices.Contains(stepOps, st.Op) {
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}

	switch st.Op {
	case OpAdd:
		if st.Play == "" {
			return fmt.Errorf("steps[%d]: play is required for add", index)
		}
	case OpRemove, OpToggle, OpBeginDrag, OpGestureStart:
		if st.ID <= 0 {
			return fmt.Errorf("steps[%d]: id is required for %s", index, st.Op)
		}
	case OpRate:
		if st.ID <= 0 || st.Rating == nil {
			return fmt.Errorf("steps[%d]: id and rating are required for rate", index)
		}
	case OpNote:
		if st.ID <= 0 || st.Notes == nil {
			return fmt.Errorf("steps[%d]: id and notes are required for note", index)
		}
	case OpTag, OpUntag:
		if st.ID <= 0 || st.Tag == "" {
			return fmt.Errorf("steps[%d]: id and tag are required for %s", index, st.Op)
		}
	case OpSelectAll:
		if len(st.IDs) == 0 {
			return fmt.Errorf("steps[%d]: ids is required for select_all", index)
		}
	case OpDrop:
		if st.Target == "" {
			return fmt.Errorf("steps[%d]: target is required for drop", index)
		}
	case OpSearch:
		if st.Query == "" {
			return fmt.Errorf("steps[%d]: query is required for search", index)
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertEntry, AssertAbsent:
		if a.ID <= 0 {
			return fmt.Errorf("assertions[%d]: id is required for %s", index, a.Type)
		}
	case AssertCount:
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for count", index)
		}
	case AssertSelection:
		if a.State == "" {
			return fmt.Errorf("assertions[%d]: state is required for selection", index)
		}
	case AssertContext:
		if a.Down == nil && a.Distance == nil && a.Position == "" {
			return fmt.Errorf("assertions[%d]: down, distance or position is required for context", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
