package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/sheet"
)

// stars renders a rating as filled and empty stars; unrated is empty.
func stars(rating int) string {
	if rating <= 0 {
		return ""
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", domain.MaxRating-rating)
}

// entryLine renders one playsheet entry on a single line.
func entryLine(e domain.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s (%s)", e.ID, e.PlayName, e.PlayType)
	if s := stars(e.Rating); s != "" {
		b.WriteString(" " + s)
	}
	if e.Tags.Len() > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Tags.Slice(), ", "))
	}
	if e.Notes != "" {
		fmt.Fprintf(&b, " - %s", e.Notes)
	}
	return b.String()
}

// writeView renders a playsheet view: grouped under formation group and
// formation for the formation order, flat otherwise.
func writeView(w io.Writer, title string, v sheet.View) {
	st := v.Stats
	fmt.Fprintf(w, "%s: %d plays (%d pass, %d run)", title, st.Total, st.Pass, st.Run)
	if st.Filtered != st.Total {
		fmt.Fprintf(w, ", showing %d", st.Filtered)
	}
	fmt.Fprintln(w)

	if len(v.Entries) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}

	if len(v.Groups) == 0 {
		for _, e := range v.Entries {
			fmt.Fprintf(w, "  %s\n", entryLine(e))
		}
		return
	}

	for _, g := range v.Groups {
		fmt.Fprintf(w, "%s\n", g.Name)
		for _, f := range g.Formations {
			fmt.Fprintf(w, "  %s\n", f.Name)
			for _, e := range f.Entries {
				fmt.Fprintf(w, "    %s\n", entryLine(e))
			}
		}
	}
}

// writeGameContext renders the context bar.
func writeGameContext(w io.Writer, g domain.GameContext) {
	fmt.Fprintf(w, "%s & %d at %s\n", ordinal(g.Down), g.Distance, g.FieldPosition())
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
