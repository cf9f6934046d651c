package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/roach88/playsheet/internal/catalog"
	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/search"
	"github.com/roach88/playsheet/internal/selection"
	"github.com/roach88/playsheet/internal/store"
	"github.com/roach88/playsheet/internal/testutil"
)

// Harness is the scenario execution engine.
// It runs scenarios with a step clock and sequential gesture tokens.
type Harness struct {
	store   *store.Store
	catalog *catalog.Catalog
	index   *search.Index
	engine  *selection.Engine
	logger  *slog.Logger

	result  *Result
	pending []string
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// Execution flow:
// 1. Load the scenario catalog (or the sample catalog)
// 2. Create fresh in-memory database and selection engine
// 3. Register the watched live queries
// 4. Execute steps, recording each outcome in the trace
// 5. Snapshot the final state and evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in scenarios

	cat, err := loadCatalog(ctx, scenario, logger)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:",
		store.WithClock(testutil.NewStepClock().Now),
		store.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:   st,
		catalog: cat,
		index:   search.New(cat),
		engine: selection.New(st,
			selection.WithTokens(testutil.NewSequentialTokens(scenario.TokenPrefix)),
			selection.WithLogger(logger),
		),
		logger: logger,
		result: NewResult(),
	}

	h.result.AddTrace("scenario " + scenario.Name)
	for _, w := range scenario.Watch {
		cancel := h.watch(w)
		defer cancel()
	}
	h.flush()

	for i, step := range scenario.Steps {
		h.executeStep(ctx, i+1, step)
	}

	if err := h.snapshot(ctx); err != nil {
		return nil, fmt.Errorf("failed to read final state: %w", err)
	}

	for _, msg := range EvaluateAssertions(h.result, h.engine, scenario.Assertions) {
		h.result.AddError(msg)
	}
	return h.result, nil
}

func loadCatalog(ctx context.Context, scenario *Scenario, logger *slog.Logger) (*catalog.Catalog, error) {
	var src catalog.Source = catalog.BytesSource{Label: "sample", Data: []byte(testutil.SampleCatalogJSON)}
	if scenario.Catalog != "" {
		if _, err := os.Stat(scenario.Catalog); err != nil {
			return nil, fmt.Errorf("catalog file: %w", err)
		}
		src = catalog.FileSource{Path: scenario.Catalog}
	}
	cat, err := catalog.New(src, catalog.WithLogger(logger)).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// watch registers a traced live query. Notifications are buffered and
// written after the line of the step that caused them.
func (h *Harness) watch(name string) (cancel func()) {
	emit := func(summary string, err error) {
		if err != nil {
			summary = "error: " + err.Error()
		}
		h.pending = append(h.pending, fmt.Sprintf("  watch %s: %s", name, summary))
	}

	switch name {
	case WatchContext:
		return store.Watch(h.store, store.CurrentGameContext(), func(g domain.GameContext, err error) {
			emit(describeContext(g), err)
		})
	case WatchAll:
		return store.Watch(h.store, store.All(), func(entries []domain.Entry, err error) {
			emit(describeEntries(entries), err)
		})
	default:
		return store.Watch(h.store, store.BySide(domain.Side(name)), func(entries []domain.Entry, err error) {
			emit(describeEntries(entries), err)
		})
	}
}

func (h *Harness) flush() {
	for _, line := range h.pending {
		h.result.AddTrace(line)
	}
	h.pending = h.pending[:0]
}

// executeStep runs one step and traces it. Unexpected errors, and expected
// errors that did not happen, fail the result.
func (h *Harness) executeStep(ctx context.Context, n int, step Step) {
	label := describeStep(step)
	outcome, err := h.apply(ctx, step)

	switch {
	case err != nil:
		h.result.AddTrace(fmt.Sprintf("step %d %s: error: %v", n, label, err))
		if step.ExpectError == "" {
			h.result.AddError(fmt.Sprintf("step %d %s: unexpected error: %v", n, label, err))
		} else if !strings.Contains(err.Error(), step.ExpectError) {
			h.result.AddError(fmt.Sprintf("step %d %s: error %q does not contain %q", n, label, err, step.ExpectError))
		}
	default:
		h.result.AddTrace(fmt.Sprintf("step %d %s: %s", n, label, outcome))
		if step.ExpectError != "" {
			h.result.AddError(fmt.Sprintf("step %d %s: expected error containing %q", n, label, step.ExpectError))
		}
	}
	h.flush()

	h.logger.Debug("step executed", "step", n, "op", step.Op, "error", err)
}

// apply performs the operation and describes its outcome.
func (h *Harness) apply(ctx context.Context, step Step) (string, error) {
	st, eng := h.store, h.engine

	switch step.Op {
	case OpAdd:
		ref, ok := h.catalog.Play(step.Play)
		if !ok {
			return "", fmt.Errorf("play %q not found in catalog", step.Play)
		}
		in := ref.NewEntry()
		in.Tags = domain.NewTagSet(step.Tags...)
		id, err := st.Add(ctx, in, ref.Side)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("#%d %s (%s)", id, ref.Name, ref.Side), nil

	case OpRemove:
		return "ok", st.Remove(ctx, step.ID)

	case OpRate:
		_, err := st.Update(ctx, step.ID, domain.Patch{Rating: step.Rating})
		return "ok", err

	case OpNote:
		_, err := st.Update(ctx, step.ID, domain.Patch{Notes: step.Notes})
		return "ok", err

	case OpTag, OpUntag:
		e, err := st.Get(ctx, step.ID)
		if err != nil {
			return "", err
		}
		tags := e.Tags.Add(step.Tag)
		if step.Op == OpUntag {
			tags = e.Tags.Remove(step.Tag)
		}
		e, err = st.Update(ctx, step.ID, domain.Patch{Tags: &tags})
		if err != nil {
			return "", err
		}
		return describeTags(e.Tags), nil

	case OpSetContext:
		patch := domain.GameContextPatch{Down: step.Down, Distance: step.Distance, YardLine: step.Yard}
		if step.Field != nil {
			fs := domain.FieldSide(*step.Field)
			patch.FieldSide = &fs
		}
		g, err := st.UpdateGameContext(ctx, patch)
		if err != nil {
			return "", err
		}
		return describeContext(g), nil

	case OpClearContext:
		if err := st.ClearGameContext(ctx); err != nil {
			return "", err
		}
		return describeContext(st.GameContext(ctx)), nil

	case OpSearch:
		hits := search.Collect(h.index.Search(step.Query, search.Options{
			Side:       domain.Side(step.Side),
			PlaybookID: step.Playbook,
			Limit:      step.Limit,
		}))
		ids := make([]string, len(hits))
		for i, hit := range hits {
			ids[i] = hit.ID
		}
		return fmt.Sprintf("%d hits [%s]", len(hits), strings.Join(ids, " ")), nil

	case OpEnterSelection:
		return h.after(eng.EnterSelectionMode())
	case OpExitSelection:
		return h.after(eng.ExitSelectionMode())
	case OpToggle:
		return h.after(eng.ToggleMark(step.ID))
	case OpSelectAll:
		return h.after(eng.SelectAll(step.IDs))
	case OpClearMarks:
		return h.after(eng.ClearMarks())
	case OpCancelDrag:
		return h.after(eng.CancelDrag())
	case OpGestureCancel:
		return h.after(eng.GestureCancel())

	case OpBeginDrag:
		d, err := eng.BeginDrag(step.ID)
		if err != nil {
			return "", err
		}
		return describeDrag(d), nil

	case OpGestureStart:
		if _, err := eng.GestureStart(step.ID); err != nil {
			return "", err
		}
		d, _ := eng.Drag()
		return describeDrag(d), nil

	case OpGestureMove:
		if err := eng.GestureMove(step.Target); err != nil {
			return "", err
		}
		if t, ok := eng.Hover(); ok {
			return "hover=" + t.ID, nil
		}
		return "hover=none", nil

	case OpDrop:
		target, ok := selection.DefaultTargets(step.Target)
		if !ok {
			target = selection.TagTarget(step.Target)
		}
		res, err := eng.DropOn(ctx, target)
		return h.describeDrop(res), err

	case OpGestureEnd:
		res, err := eng.GestureEnd(ctx, step.Target)
		return h.describeDrop(res), err
	}

	return "", fmt.Errorf("unknown op %q", step.Op)
}

// snapshot records the final state in the result and the trace.
func (h *Harness) snapshot(ctx context.Context) error {
	entries, err := h.store.QueryAll(ctx)
	if err != nil {
		return err
	}
	h.result.Entries = entries
	h.result.GameContext = h.store.GameContext(ctx)

	h.result.AddTrace("final")
	for _, e := range entries {
		h.result.AddTrace(fmt.Sprintf("  #%d %s %s tags=%s rating=%d notes=%q added=%s",
			e.ID, e.PlayID, e.Side, describeTags(e.Tags), e.Rating, e.Notes, e.AddedAt.Format(time.RFC3339)))
	}
	h.result.AddTrace("  context " + describeContext(h.result.GameContext))
	h.result.AddTrace("  " + h.selection())
	return nil
}

// after describes the selection state once a transition has run.
func (h *Harness) after(err error) (string, error) {
	return h.selection(), err
}

func (h *Harness) selection() string {
	marks := h.engine.Marked()
	if marks == nil {
		marks = []int64{}
	}
	return fmt.Sprintf("state=%s marks=%v", h.engine.State(), marks)
}

func (h *Harness) describeDrop(res selection.DropResult) string {
	if res.Cancelled {
		return fmt.Sprintf("%s cancelled %s", res.Token, h.selection())
	}
	if res.Token == "" {
		return h.selection()
	}
	return fmt.Sprintf("%s tag=%q applied=%v failed=%v %s", res.Token, res.Target.Tag, res.Applied, res.Failed, h.selection())
}

func describeDrag(d selection.Drag) string {
	return fmt.Sprintf("%s payload=%v batch=%t", d.Token, d.Payload, d.Batch)
}

func describeStep(step Step) string {
	switch step.Op {
	case OpAdd:
		return "add " + step.Play
	case OpRemove, OpToggle, OpBeginDrag, OpGestureStart:
		return fmt.Sprintf("%s #%d", step.Op, step.ID)
	case OpRate:
		return fmt.Sprintf("rate #%d %d", step.ID, *step.Rating)
	case OpNote:
		return fmt.Sprintf("note #%d %q", step.ID, *step.Notes)
	case OpTag, OpUntag:
		return fmt.Sprintf("%s #%d %q", step.Op, step.ID, step.Tag)
	case OpSelectAll:
		return fmt.Sprintf("select_all %v", step.IDs)
	case OpSearch:
		return fmt.Sprintf("search %q", step.Query)
	case OpDrop, OpGestureMove, OpGestureEnd:
		return fmt.Sprintf("%s %q", step.Op, step.Target)
	default:
		return step.Op
	}
}

func describeEntries(entries []domain.Entry) string {
	if len(entries) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("#%d", e.ID)
		if e.Tags.Len() > 0 {
			parts[i] += describeTags(e.Tags)
		}
	}
	return strings.Join(parts, " ")
}

func describeTags(tags domain.TagSet) string {
	return "[" + strings.Join(tags.Slice(), ",") + "]"
}

func describeContext(g domain.GameContext) string {
	return fmt.Sprintf("%d & %d at %s", g.Down, g.Distance, g.FieldPosition())
}
