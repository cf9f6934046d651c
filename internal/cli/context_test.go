package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
)

func TestContextCommand_ShowSetClear(t *testing.T) {
	opts := newTestOptions(t, "text")

	assert.Equal(t, "1st & 10 at OWN 25\n", mustRun(t, NewContextCommand(opts), "show"))

	out := mustRun(t, NewContextCommand(opts), "set", "--down", "3", "--distance", "7")
	assert.Equal(t, "3rd & 7 at OWN 25\n", out)

	out = mustRun(t, NewContextCommand(opts), "set", "--field", "opp", "--yard", "15")
	assert.Equal(t, "3rd & 7 at OPP 15\n", out)

	assert.Equal(t, "3rd & 7 at OPP 15\n", mustRun(t, NewContextCommand(opts), "show"))

	out = mustRun(t, NewContextCommand(opts), "clear")
	assert.Equal(t, "1st & 10 at OWN 25\n", out)
}

func TestContextCommand_Midfield(t *testing.T) {
	opts := newTestOptions(t, "text")

	out := mustRun(t, NewContextCommand(opts), "set", "--down", "4", "--distance", "1", "--yard", "50")
	assert.Equal(t, "4th & 1 at MIDFIELD\n", out)
}

func TestContextCommand_JSON(t *testing.T) {
	opts := newTestOptions(t, "json")

	out := mustRun(t, NewContextCommand(opts), "set", "--down", "2")

	var view GameContextView
	resp := decodeResponse(t, out, &view)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, view.Down)
	assert.Equal(t, 10, view.Distance)
	assert.Equal(t, domain.FieldOwn, view.FieldSide)
	assert.Equal(t, "OWN 25", view.FieldPosition)
}

func TestContextCommand_RejectsInvalidValues(t *testing.T) {
	opts := newTestOptions(t, "text")

	tests := map[string][]string{
		"down":     {"set", "--down", "5"},
		"distance": {"set", "--distance", "0"},
		"field":    {"set", "--field", "middle"},
		"yard":     {"set", "--yard", "60"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, NewContextCommand(opts), args...)
			requireExit(t, err, ExitCommandError, ErrCodeInvalid)
		})
	}

	out := mustRun(t, NewContextCommand(opts), "show")
	require.Equal(t, "1st & 10 at OWN 25\n", out, "rejected values must not be stored")
}
