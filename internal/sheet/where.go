package sheet

import (
	"fmt"
	"time"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/roach88/playsheet/internal/domain"
)

// Predicate is a compiled entry filter expression.
//
// Expressions see these variables:
//
//	id, play_id, playbook, formation_group, formation, play_name,
//	play_type, side, notes   string (id is int)
//	tags                     []string
//	rating                   int, 0 when unrated
//	rated, defensive         bool
//	added_at, now            time
type Predicate struct {
	src     string
	program *exprvm.Program
	now     func() time.Time
}

// CompileWhere type-checks src against the entry variables. The expression
// must evaluate to a bool.
func CompileWhere(src string) (*Predicate, error) {
	if src == "" {
		return nil, fmt.Errorf("compile where: expression must not be empty")
	}
	program, err := exprlang.Compile(src,
		exprlang.Env(environment(domain.Entry{}, time.Time{})),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile where %q: %w", src, err)
	}
	return &Predicate{src: src, program: program, now: time.Now}, nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	return p.src
}

// Match evaluates the predicate for one entry.
func (p *Predicate) Match(e domain.Entry) (bool, error) {
	out, err := exprlang.Run(p.program, environment(e, p.now()))
	if err != nil {
		return false, fmt.Errorf("evaluate where %q on entry %d: %w", p.src, e.ID, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Filter keeps the entries the predicate matches.
func (p *Predicate) Filter(entries []domain.Entry) ([]domain.Entry, error) {
	out := []domain.Entry{}
	for _, e := range entries {
		ok, err := p.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func environment(e domain.Entry, now time.Time) map[string]any {
	return map[string]any{
		"id":              int(e.ID),
		"play_id":         e.PlayID,
		"playbook":        e.Playbook,
		"formation_group": e.FormationGroup,
		"formation":       e.Formation,
		"play_name":       e.PlayName,
		"play_type":       e.PlayType,
		"side":            string(e.Side),
		"tags":            e.Tags.Slice(),
		"notes":           e.Notes,
		"rating":          e.Rating,
		"rated":           e.HasRating(),
		"defensive":       e.DefensiveAdjustments != nil,
		"added_at":        e.AddedAt,
		"now":             now,
	}
}
