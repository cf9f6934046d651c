package catalog

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/roach88/playsheet/internal/domain"
)

// Store owns the lifecycle of one catalog: construct it with a Source,
// call Load, then look things up. Inject the Store into dependents instead
// of keeping a package-level catalog.
//
// Thread-safety: all methods are safe for concurrent use. Concurrent Load
// calls before the first success share one fetch.
type Store struct {
	src    Source
	logger *slog.Logger
	group  singleflight.Group

	mu  sync.RWMutex
	cat *Catalog
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New creates a Store for src. Nothing is fetched until Load.
func New(src Source, opts ...Option) *Store {
	s := &Store{
		src:    src,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches and indexes the catalog, or returns the catalog from an
// earlier successful Load.
//
// The shared fetch is detached from any single caller's cancellation; a
// caller whose ctx is done stops waiting and gets ctx.Err(), while the
// others still receive the result. Failures are *LoadError and are not
// cached.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	if cat := s.loaded(); cat != nil {
		return cat, nil
	}

	ch := s.group.DoChan("catalog", func() (any, error) {
		if cat := s.loaded(); cat != nil {
			return cat, nil
		}
		cat, err := s.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cat = cat
		s.mu.Unlock()
		return cat, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Catalog), nil
	}
}

func (s *Store) fetch(ctx context.Context) (*Catalog, error) {
	name := s.src.Name()
	s.logger.Debug("loading catalog", "source", name)

	data, err := s.src.Fetch(ctx)
	if err != nil {
		s.logger.Error("catalog fetch failed", "source", name, "error", err)
		return nil, &LoadError{Source: name, Op: OpFetch, Err: err}
	}

	cat, err := Parse(name, data)
	if err != nil {
		s.logger.Error("catalog invalid", "source", name, "error", err)
		return nil, err
	}

	s.logger.Info("catalog loaded", "source", name, "playbooks", len(cat.playbooks), "plays", cat.PlayCount())
	return cat, nil
}

func (s *Store) loaded() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Ready reports whether a Load has succeeded.
func (s *Store) Ready() bool {
	return s.loaded() != nil
}

// Catalog returns the loaded catalog, or nil before a successful Load.
func (s *Store) Catalog() *Catalog {
	return s.loaded()
}

// Playbook looks up a playbook by id. It reports false for unknown ids and
// before the catalog is loaded.
func (s *Store) Playbook(id string) (*Playbook, bool) {
	cat := s.loaded()
	if cat == nil {
		return nil, false
	}
	return cat.Playbook(id)
}

// Play looks up a play by id with its ancestor path.
func (s *Store) Play(id string) (PlayRef, bool) {
	cat := s.loaded()
	if cat == nil {
		return PlayRef{}, false
	}
	return cat.Play(id)
}

// Playbooks lists playbooks by side and category; empty values match all.
func (s *Store) Playbooks(side domain.Side, category Category) []*Playbook {
	cat := s.loaded()
	if cat == nil {
		return nil
	}
	return cat.Filter(side, category)
}
