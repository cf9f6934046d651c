package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/roach88/playsheet/internal/domain"
)

//go:embed schema.cue
var schemaSrc string

// Catalog is an indexed, immutable view of a loaded catalog document.
type Catalog struct {
	playbooks []*Playbook
	byID      map[string]*Playbook
	plays     map[string]PlayRef
}

// Parse validates, decodes and indexes a catalog document.
// name is used in error messages and CUE positions.
func Parse(name string, data []byte) (*Catalog, error) {
	if err := validateDocument(name, data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Source: name, Op: OpParse, Err: err}
	}

	cat, err := index(&doc)
	if err != nil {
		return nil, &LoadError{Source: name, Op: OpIndex, Err: err}
	}
	return cat, nil
}

// validateDocument unifies the raw JSON with #Document from schema.cue.
func validateDocument(name string, data []byte) error {
	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return &LoadError{Source: name, Op: OpParse, Err: err}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return &LoadError{Source: name, Op: OpValidate, Err: fmt.Errorf("compile schema: %w", err)}
	}

	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return &LoadError{Source: name, Op: OpParse, Err: err}
	}

	unified := schema.LookupPath(cue.ParsePath("#Document")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &LoadError{Source: name, Op: OpValidate, Err: err}
	}
	return nil
}

// index builds the lookup maps and enforces the uniqueness invariants:
// play ids are unique catalog-wide, slugs unique within a playbook.
func index(doc *Document) (*Catalog, error) {
	cat := &Catalog{
		playbooks: doc.Playbooks,
		byID:      make(map[string]*Playbook, len(doc.Playbooks)),
		plays:     make(map[string]PlayRef),
	}

	for _, pb := range doc.Playbooks {
		if _, dup := cat.byID[pb.ID]; dup {
			return nil, fmt.Errorf("duplicate playbook id %q", pb.ID)
		}
		cat.byID[pb.ID] = pb

		slugs := make(map[string]bool)
		for _, g := range pb.FormationGroups {
			for _, f := range g.Formations {
				if slugs[f.Slug] {
					return nil, fmt.Errorf("playbook %q: duplicate formation slug %q", pb.ID, f.Slug)
				}
				slugs[f.Slug] = true

				for _, p := range f.Plays {
					if prev, dup := cat.plays[p.ID]; dup {
						return nil, fmt.Errorf("duplicate play id %q (playbooks %q and %q)", p.ID, prev.PlaybookID, pb.ID)
					}
					cat.plays[p.ID] = PlayRef{
						Play:               p,
						PlaybookID:         pb.ID,
						PlaybookName:       pb.Name,
						Side:               pb.Side,
						FormationGroupName: g.Name,
						FormationName:      f.Name,
						FormationSlug:      f.Slug,
					}
				}
			}
		}
	}
	return cat, nil
}

// Playbooks returns every playbook in declaration order.
func (c *Catalog) Playbooks() []*Playbook {
	return c.playbooks
}

// Playbook looks up a playbook by id in O(1).
func (c *Catalog) Playbook(id string) (*Playbook, bool) {
	pb, ok := c.byID[id]
	return pb, ok
}

// Play looks up a play by id in O(1), with its ancestor path.
func (c *Catalog) Play(id string) (PlayRef, bool) {
	ref, ok := c.plays[id]
	return ref, ok
}

// PlayCount returns the number of plays in the catalog.
func (c *Catalog) PlayCount() int {
	return len(c.plays)
}

// Filter returns the playbooks matching side and category in declaration
// order. An empty side or category matches everything.
func (c *Catalog) Filter(side domain.Side, category Category) []*Playbook {
	var out []*Playbook
	for _, pb := range c.playbooks {
		if side != "" && pb.Side != side {
			continue
		}
		if category != "" && pb.Category != category {
			continue
		}
		out = append(out, pb)
	}
	return out
}
