package store

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/roach88/playsheet/internal/domain"
)

// Query is a read evaluated by a live query.
type Query[T any] func(ctx context.Context, s *Store) (T, error)

// BySide is the live form of QueryBySide.
func BySide(side domain.Side) Query[[]domain.Entry] {
	return func(ctx context.Context, s *Store) ([]domain.Entry, error) {
		return s.QueryBySide(ctx, side)
	}
}

// All is the live form of QueryAll.
func All() Query[[]domain.Entry] {
	return func(ctx context.Context, s *Store) ([]domain.Entry, error) {
		return s.QueryAll(ctx)
	}
}

// CurrentGameContext is the live form of GameContext. It never errors.
func CurrentGameContext() Query[domain.GameContext] {
	return func(ctx context.Context, s *Store) (domain.GameContext, error) {
		return s.GameContext(ctx), nil
	}
}

// Watch registers a live query on s.
//
// query is evaluated once before Watch returns and again after every
// successful write, synchronously, before the write call returns. Each
// evaluation calls onChange with the result. Results are not diffed or
// coalesced: every write produces one callback per registered query.
//
// The returned cancel unregisters the query; it is safe to call more than
// once and from inside onChange. onChange must not write to s.
func Watch[T any](s *Store, query Query[T], onChange func(T, error)) (cancel func()) {
	w := &watcher{}
	w.eval = func(ctx context.Context) {
		if w.cancelled.Load() {
			return
		}
		onChange(query(ctx, s))
	}

	s.watchers.add(w)
	w.eval(context.Background())

	var once sync.Once
	return func() {
		once.Do(func() {
			w.cancelled.Store(true)
			s.watchers.remove(w)
		})
	}
}

type watcher struct {
	eval      func(ctx context.Context)
	cancelled atomic.Bool
}

// registry holds live queries in registration order.
type registry struct {
	mu       sync.Mutex
	watchers []*watcher
}

func (r *registry) add(w *watcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers = append(r.watchers, w)
}

func (r *registry) remove(w *watcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, x := range r.watchers {
		if x == w {
			r.watchers = append(r.watchers[:i:i], r.watchers[i+1:]...)
			return
		}
	}
}

func (r *registry) snapshot() []*watcher {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*watcher, len(r.watchers))
	copy(out, r.watchers)
	return out
}

// Watching returns the number of registered live queries.
func (s *Store) Watching() int {
	s.watchers.mu.Lock()
	defer s.watchers.mu.Unlock()
	return len(s.watchers.watchers)
}

// notify re-evaluates every live query after a committed write. The write
// has already happened, so the caller's cancellation does not apply.
func (s *Store) notify(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for _, w := range s.watchers.snapshot() {
		w.eval(ctx)
	}
}
