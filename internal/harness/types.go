package harness

import (
	"strings"

	"github.com/roach88/playsheet/internal/domain"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step behaved as expected and every assertion
	// held.
	Pass bool `json:"pass"`

	// Trace is the deterministic step and notification log, one line per
	// event. Compared against golden files.
	Trace []string `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Entries is the final playsheet, ordered by id.
	Entries []domain.Entry `json:"entries"`

	// GameContext is the final game context.
	GameContext domain.GameContext `json:"game_context"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Trace:   []string{},
		Errors:  []string{},
		Entries: []domain.Entry{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends one trace line.
func (r *Result) AddTrace(line string) {
	r.Trace = append(r.Trace, line)
}

// Render returns the trace as newline-terminated text.
func (r *Result) Render() []byte {
	var b strings.Builder
	for _, line := range r.Trace {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
