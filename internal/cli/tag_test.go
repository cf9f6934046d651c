package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/selection"
	"github.com/roach88/playsheet/internal/testutil"
)

func TestTagCommand_SingleEntry(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)

	out := mustRun(t, NewTagCommand(opts), "red-zone", "1")
	assert.Equal(t, "Tagged 1 entry with \"red zone\"\n", out)

	out = mustRun(t, NewTagCommand(opts), "short yardage", "1")
	assert.Equal(t, "Tagged 1 entry with \"short yardage\"\n", out)

	out = mustRun(t, NewListCommand(opts))
	assert.Contains(t, out, "#1 Mesh Post (pass) [red zone, short yardage]")
}

func TestTagCommand_BatchJSON(t *testing.T) {
	opts := newTestOptions(t, "json")
	seedPlaysheet(t, opts)

	out := mustRun(t, NewTagCommand(opts), "3rd down", "1", "2", "1")

	var res selection.DropResult
	resp := decodeResponse(t, out, &res)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
	assert.Equal(t, resp.TraceID, res.Token)
	assert.Equal(t, "3rd down", res.Target.Tag)
	assert.Equal(t, []int64{1, 2}, res.Applied)
	assert.Empty(t, res.Failed)
}

func TestTagCommand_PartialFailure(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)

	out, err := run(t, NewTagCommand(opts), "money", "1", "9")
	requireExit(t, err, ExitFailure, ErrCodeNotFound)
	assert.Contains(t, out, `Error [E005]: tagged 1 of 2 entries with "money"`)

	// The entry that could be tagged keeps its tag.
	out = mustRun(t, NewListCommand(opts))
	assert.Contains(t, out, "#1 Mesh Post (pass) [money]")
}

func TestTagCommand_UntaggedTarget(t *testing.T) {
	opts := newTestOptions(t, "text")

	out, err := run(t, NewTagCommand(opts), "all", "1")
	requireExit(t, err, ExitCommandError, ErrCodeInvalid)
	assert.Contains(t, out, `"all" does not assign a tag`)
}

func TestTagCommand_RequiresIDs(t *testing.T) {
	opts := newTestOptions(t, "text")

	_, err := run(t, NewTagCommand(opts), "money")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg")
}

func TestResolveTarget(t *testing.T) {
	assert.Equal(t, "red zone", resolveTarget("red-zone").Tag)
	assert.Equal(t, "man beater", resolveTarget("man beater").Tag)
	assert.Equal(t, "trick play", resolveTarget("  trick play ").Tag)
	assert.False(t, resolveTarget("all").Assignable())

	assert.Equal(t, "2 min", resolveTag("2-min"))
	assert.Equal(t, "all", resolveTag("all"))
	assert.Equal(t, "blitz", resolveTag(" blitz"))
}
