package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/playsheet/internal/domain"
)

// State is the engine's mode.
type State int

const (
	Idle State = iota
	Selecting
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Playsheet is the storage the engine tags entries in.
// Implemented by *store.Store.
type Playsheet interface {
	Get(ctx context.Context, id int64) (domain.Entry, error)
	Update(ctx context.Context, id int64, patch domain.Patch) (domain.Entry, error)
}

// Drag describes a gesture in progress.
type Drag struct {
	Token string `json:"token"`

	// Origin is the entry the gesture started on.
	Origin int64 `json:"origin"`

	// Payload is the entries the drop will tag, in mark order.
	Payload []int64 `json:"payload"`

	// Batch is true when the payload is the marked set rather than the
	// origin alone.
	Batch bool `json:"batch"`
}

// DropResult reports what a drop did.
type DropResult struct {
	Token  string `json:"token"`
	Target Target `json:"target"`

	// Applied lists the entries now carrying the tag, in payload order.
	Applied []int64 `json:"applied"`

	// Failed lists the entries that could not be tagged.
	Failed []int64 `json:"failed"`

	// Cancelled is true when the gesture ended without a target.
	Cancelled bool `json:"cancelled,omitempty"`
}

// Mutated reports whether the drop wrote to the playsheet.
func (r DropResult) Mutated() bool {
	return len(r.Applied) > 0
}

// Engine tracks marks and drags over playsheet entries.
type Engine struct {
	sheet   Playsheet
	tokens  TokenGenerator
	targets TargetResolver
	logger  *slog.Logger

	state State
	marks []int64

	// Set while Dragging.
	drag       *Drag
	prior      State
	priorMarks []int64
	hover      *Target
}

// Option configures an Engine.
type Option func(*Engine)

// WithTokens sets the gesture token generator (default UUIDv7Generator).
func WithTokens(g TokenGenerator) Option {
	return func(e *Engine) {
		e.tokens = g
	}
}

// WithTargets sets how gesture target ids are resolved (default
// DefaultTargets).
func WithTargets(r TargetResolver) Option {
	return func(e *Engine) {
		e.targets = r
	}
}

// WithLogger sets the logger for gesture events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Idle engine over sheet.
func New(sheet Playsheet, opts ...Option) *Engine {
	e := &Engine{
		sheet:   sheet,
		tokens:  UUIDv7Generator{},
		targets: DefaultTargets,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current mode.
func (e *Engine) State() State {
	return e.state
}

// Marked returns a copy of the marked entry ids in mark order.
func (e *Engine) Marked() []int64 {
	return slices.Clone(e.marks)
}

// IsMarked reports whether id is marked.
func (e *Engine) IsMarked(id int64) bool {
	return slices.Contains(e.marks, id)
}

// Drag returns the gesture in progress, if any.
func (e *Engine) Drag() (Drag, bool) {
	if e.drag == nil {
		return Drag{}, false
	}
	d := *e.drag
	d.Payload = slices.Clone(d.Payload)
	return d, true
}

func (e *Engine) require(op string, allowed ...State) error {
	if slices.Contains(allowed, e.state) {
		return nil
	}
	return &TransitionError{Op: op, State: e.state}
}

// EnterSelectionMode switches Idle to Selecting. It is a no-op while
// already Selecting.
func (e *Engine) EnterSelectionMode() error {
	if err := e.require("enter selection mode", Idle, Selecting); err != nil {
		return err
	}
	e.state = Selecting
	return nil
}

// ExitSelectionMode clears every mark and returns to Idle. It is a no-op
// while Idle.
func (e *Engine) ExitSelectionMode() error {
	if err := e.require("exit selection mode", Idle, Selecting); err != nil {
		return err
	}
	e.state = Idle
	e.marks = nil
	return nil
}

// ToggleMark marks id, or unmarks it if already marked.
func (e *Engine) ToggleMark(id int64) error {
	if err := e.require("toggle mark", Selecting); err != nil {
		return err
	}
	if i := slices.Index(e.marks, id); i >= 0 {
		e.marks = slices.Delete(e.marks, i, i+1)
	} else {
		e.marks = append(e.marks, id)
	}
	return nil
}

// SelectAll replaces the marked set with ids, dropping duplicates.
func (e *Engine) SelectAll(ids []int64) error {
	if err := e.require("select all", Selecting); err != nil {
		return err
	}
	marks := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(marks, id) {
			marks = append(marks, id)
		}
	}
	e.marks = marks
	return nil
}

// ClearMarks empties the marked set and stays in Selecting.
func (e *Engine) ClearMarks() error {
	if err := e.require("clear marks", Selecting); err != nil {
		return err
	}
	e.marks = nil
	return nil
}

// BeginDrag starts dragging id.
//
// With entries marked, the payload is the marked set, and id is added to it
// if it was not marked. With nothing marked the payload is id alone.
func (e *Engine) BeginDrag(id int64) (Drag, error) {
	if err := e.require("begin drag", Idle, Selecting); err != nil {
		return Drag{}, err
	}

	e.prior = e.state
	e.priorMarks = slices.Clone(e.marks)

	d := &Drag{Token: e.tokens.Generate(), Origin: id}
	if len(e.marks) > 0 {
		if !slices.Contains(e.marks, id) {
			e.marks = append(e.marks, id)
		}
		d.Payload = slices.Clone(e.marks)
		d.Batch = true
	} else {
		d.Payload = []int64{id}
	}

	e.drag = d
	e.hover = nil
	e.state = Dragging

	e.logger.Debug("drag started",
		"gesture", d.Token,
		"entry_id", id,
		"payload", len(d.Payload),
		"batch", d.Batch,
	)
	return *d, nil
}

// CancelDrag abandons the drag without writing anything. State and marks
// return to exactly what they were before BeginDrag.
func (e *Engine) CancelDrag() error {
	if err := e.require("cancel drag", Dragging); err != nil {
		return err
	}
	e.logger.Debug("drag cancelled", "gesture", e.drag.Token)
	e.restore()
	return nil
}

func (e *Engine) restore() {
	e.state = e.prior
	e.marks = e.priorMarks
	e.endDrag()
}

func (e *Engine) endDrag() {
	e.drag = nil
	e.hover = nil
	e.priorMarks = nil
}

// DropOn ends the drag on target.
//
// A target without a tag changes nothing and behaves like CancelDrag.
// Otherwise every payload entry, in payload order, is read and updated with
// its tags unioned with the target tag. Entries are updated independently;
// failures are collected in a *DropError and do not undo other entries.
//
// After a batch drop where every entry succeeded, the marks are cleared and
// selection mode is exited. A batch drop with failures stays in Selecting
// with the batch still marked so it can be retried. A single-entry drag
// returns to the state it started from: Idle when begun from Idle, Selecting
// (with no marks) when begun from selection mode.
func (e *Engine) DropOn(ctx context.Context, target Target) (DropResult, error) {
	if err := e.require("drop", Dragging); err != nil {
		return DropResult{}, err
	}

	d := e.drag
	res := DropResult{Token: d.Token, Target: target, Applied: []int64{}, Failed: []int64{}}

	if !target.Assignable() {
		e.logger.Debug("drop on untagged target", "gesture", d.Token, "target", target.ID)
		e.restore()
		return res, nil
	}

	var errs []error
	for _, id := range d.Payload {
		if err := e.assign(ctx, id, target.Tag); err != nil {
			res.Failed = append(res.Failed, id)
			errs = append(errs, err)
			continue
		}
		res.Applied = append(res.Applied, id)
	}

	switch {
	case !d.Batch:
		e.state = e.prior
		e.marks = e.priorMarks
	case len(res.Failed) == 0:
		e.state = Idle
		e.marks = nil
	default:
		e.state = Selecting
	}
	e.endDrag()

	e.logger.Debug("drop applied",
		"gesture", d.Token,
		"tag", target.Tag,
		"applied", len(res.Applied),
		"failed", len(res.Failed),
	)

	if len(errs) > 0 {
		return res, &DropError{
			Token:  d.Token,
			Tag:    target.Tag,
			Failed: slices.Clone(res.Failed),
			Err:    errors.Join(errs...),
		}
	}
	return res, nil
}

// assign unions tag into the entry's tags.
func (e *Engine) assign(ctx context.Context, id int64, tag string) error {
	entry, err := e.sheet.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("entry %d: %w", id, err)
	}
	tags := entry.Tags.Add(tag)
	if _, err := e.sheet.Update(ctx, id, domain.Patch{Tags: &tags}); err != nil {
		return fmt.Errorf("entry %d: %w", id, err)
	}
	return nil
}
