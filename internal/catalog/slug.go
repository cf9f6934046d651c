package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/playsheet/internal/domain"
)

// NameToSlug derives a playbook slug from its display name and side:
//
//	NameToSlug("Benkert's Dimes", domain.SideOffense) == "benkerts-dimes-off"
//	NameToSlug("Cover 2", domain.SideDefense)         == "cover-2-def"
//
// Apostrophes are dropped, whitespace runs become a single hyphen and any
// other character outside [a-z0-9-] is removed.
func NameToSlug(name string, side domain.Side) string {
	lower := cases.Lower(language.Und).String(name)

	var b strings.Builder
	inSpace := false
	for _, r := range lower {
		switch {
		case r == '\'':
			continue
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		case r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
		inSpace = false
	}

	suffix := "-def"
	if side == domain.SideOffense {
		suffix = "-off"
	}
	return b.String() + suffix
}
