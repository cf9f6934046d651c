package domain

import "fmt"

// Side partitions the catalog and the playsheet into offense and defense.
type Side string

const (
	SideOffense Side = "offense"
	SideDefense Side = "defense"
)

// Sides lists the valid sides in display order.
var Sides = []Side{SideOffense, SideDefense}

// Valid reports whether s is offense or defense.
func (s Side) Valid() bool {
	return s == SideOffense || s == SideDefense
}

// ParseSide converts user input into a Side.
func ParseSide(s string) (Side, error) {
	side := Side(s)
	if !side.Valid() {
		return "", fmt.Errorf("%w: side %q must be one of %v", ErrInvalidValue, s, Sides)
	}
	return side, nil
}
