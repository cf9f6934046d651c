package domain

import "fmt"

// GameContextID is the fixed key of the game context singleton.
const GameContextID = "current"

// FieldSide says which half of the field the ball is on.
type FieldSide string

const (
	FieldOwn FieldSide = "own"
	FieldOpp FieldSide = "opp"
)

// Midfield is the yard line where own and opp meet.
const Midfield = 50

// GameContext is the current down, distance and field position used while
// planning. It is a singleton: there is at most one stored record.
type GameContext struct {
	Down      int       `json:"down"`
	Distance  int       `json:"distance"`
	FieldSide FieldSide `json:"field_side"`
	YardLine  int       `json:"yard_line"`
}

// DefaultGameContext is returned whenever no context has been stored.
func DefaultGameContext() GameContext {
	return GameContext{
		Down:      1,
		Distance:  10,
		FieldSide: FieldOwn,
		YardLine:  25,
	}
}

// Validate checks down 1..4, distance >= 1, field side and yard line 1..50.
func (g GameContext) Validate() error {
	if g.Down < 1 || g.Down > 4 {
		return fmt.Errorf("%w: down %d must be between 1 and 4", ErrInvalidValue, g.Down)
	}
	if g.Distance < 1 {
		return fmt.Errorf("%w: distance %d must be at least 1", ErrInvalidValue, g.Distance)
	}
	if g.FieldSide != FieldOwn && g.FieldSide != FieldOpp {
		return fmt.Errorf("%w: field side %q must be own or opp", ErrInvalidValue, g.FieldSide)
	}
	if g.YardLine < 1 || g.YardLine > Midfield {
		return fmt.Errorf("%w: yard line %d must be between 1 and %d", ErrInvalidValue, g.YardLine, Midfield)
	}
	return nil
}

// FieldPosition renders the ball spot, e.g. "OWN 25", "OPP 10", "MIDFIELD".
func (g GameContext) FieldPosition() string {
	if g.FieldSide == FieldOpp {
		return fmt.Sprintf("OPP %d", g.YardLine)
	}
	if g.YardLine == Midfield {
		return "MIDFIELD"
	}
	return fmt.Sprintf("OWN %d", g.YardLine)
}

// GameContextPatch is a merge-patch for the game context.
type GameContextPatch struct {
	Down      *int       `json:"down,omitempty"`
	Distance  *int       `json:"distance,omitempty"`
	FieldSide *FieldSide `json:"field_side,omitempty"`
	YardLine  *int       `json:"yard_line,omitempty"`
}

// Apply returns g with the patch merged in.
func (p GameContextPatch) Apply(g GameContext) GameContext {
	if p.Down != nil {
		g.Down = *p.Down
	}
	if p.Distance != nil {
		g.Distance = *p.Distance
	}
	if p.FieldSide != nil {
		g.FieldSide = *p.FieldSide
	}
	if p.YardLine != nil {
		g.YardLine = *p.YardLine
	}
	return g
}
