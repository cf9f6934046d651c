package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/playsheet/internal/catalog"
	"github.com/roach88/playsheet/internal/domain"
)

// DefaultLimit bounds a search when Options.Limit is not positive.
const DefaultLimit = 50

// MinQueryLength is the shortest query interactive callers should submit.
// The index itself accepts any non-empty query.
const MinQueryLength = 2

// Hit is a matching play with its ancestor path.
type Hit = catalog.PlayRef

// Options narrows a search.
type Options struct {
	// Side skips playbooks of the other side without scanning them.
	Side domain.Side

	// PlaybookID restricts the scan to one playbook.
	PlaybookID string

	// Limit caps the number of hits; DefaultLimit when <= 0.
	Limit int
}

// Index searches one catalog.
//
// Thread-safety: Search may be called concurrently; each call builds its
// own case folder.
type Index struct {
	cat   *catalog.Catalog
	visit func(catalog.Play)
}

// Option configures an Index.
type Option func(*Index)

// WithVisitHook calls fn for every play the traversal examines, matching or
// not.
func WithVisitHook(fn func(catalog.Play)) Option {
	return func(idx *Index) {
		idx.visit = fn
	}
}

// New creates an index over cat.
func New(cat *catalog.Catalog, opts ...Option) *Index {
	idx := &Index{cat: cat}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Search yields plays whose name contains query, ignoring case.
// An empty query yields nothing.
func (idx *Index) Search(query string, opts Options) iter.Seq[Hit] {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return func(yield func(Hit) bool) {
		// cases.Caser keeps state and is not safe for concurrent use.
		folder := cases.Fold()
		fold := func(s string) string {
			return folder.String(norm.NFC.String(s))
		}

		needle := fold(strings.TrimSpace(query))
		if needle == "" {
			return
		}

		found := 0
		for _, pb := range idx.cat.Playbooks() {
			if opts.Side != "" && pb.Side != opts.Side {
				continue
			}
			if opts.PlaybookID != "" && pb.ID != opts.PlaybookID {
				continue
			}
			for _, g := range pb.FormationGroups {
				for _, f := range g.Formations {
					for _, p := range f.Plays {
						if idx.visit != nil {
							idx.visit(p)
						}
						if !strings.Contains(fold(p.Name), needle) {
							continue
						}
						hit := Hit{
							Play:               p,
							PlaybookID:         pb.ID,
							PlaybookName:       pb.Name,
							Side:               pb.Side,
							FormationGroupName: g.Name,
							FormationName:      f.Name,
							FormationSlug:      f.Slug,
						}
						if !yield(hit) {
							return
						}
						found++
						if found >= limit {
							return
						}
					}
				}
			}
		}
	}
}

// Collect drains seq into a slice. The result is never nil.
func Collect(seq iter.Seq[Hit]) []Hit {
	out := []Hit{}
	for hit := range seq {
		out = append(out, hit)
	}
	return out
}
