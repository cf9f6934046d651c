package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/testutil"
)

func TestSearchCommand_MarksPlaysOnThePlaysheet(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)

	out := mustRun(t, NewSearchCommand(opts), "mesh")

	assert.Equal(t,
		"+ Mesh Post (pass)  Eagles / Gun / Gun Bunch  eagles-off-gun-bunch-mesh-post\n"+
			"  Mesh Spot (pass)  Eagles / Gun / Gun Trips TE  eagles-off-gun-trips-te-mesh-spot\n"+
			"  Mesh Blitz (blitz)  Eagles / 4-3 / 4-3 Over  eagles-def-43-over-mesh-blitz\n"+
			"  MESH (pass)  Air Raid / Gun / Gun Empty  air-raid-off-gun-empty-mesh\n",
		out)
}

func TestSearchCommand_FiltersJSON(t *testing.T) {
	opts := newTestOptions(t, "json")

	out := mustRun(t, NewSearchCommand(opts), "  MESH ", "--side", "offense", "--limit", "2")

	var hits []SearchHit
	resp := decodeResponse(t, out, &hits)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, hits, 2)
	assert.Equal(t, testutil.PlayMeshPost, hits[0].ID)
	assert.Equal(t, testutil.PlayMeshSpot, hits[1].ID)
	assert.False(t, hits[0].OnPlaysheet)
}

func TestSearchCommand_MultiWordQuery(t *testing.T) {
	opts := newTestOptions(t, "text")

	out := mustRun(t, NewSearchCommand(opts), "inside", "zone")
	assert.Contains(t, out, "Inside Zone (run)")
}

func TestSearchCommand_NoMatches(t *testing.T) {
	opts := newTestOptions(t, "text")

	out := mustRun(t, NewSearchCommand(opts), "hail mary")
	assert.Equal(t, "No plays match \"hail mary\".\n", out)
}

func TestSearchCommand_QueryTooShort(t *testing.T) {
	opts := newTestOptions(t, "text")

	out, err := run(t, NewSearchCommand(opts), " m ")
	requireExit(t, err, ExitCommandError, ErrCodeQueryShort)
	assert.Contains(t, out, `Error [E007]: query "m" is shorter than 2 characters`)
}

func TestSearchCommand_MinimumFromEnv(t *testing.T) {
	opts := newTestOptions(t, "text")
	t.Setenv("PLAYSHEET_SEARCH_MIN_QUERY", "5")

	_, err := run(t, NewSearchCommand(opts), "mesh")
	requireExit(t, err, ExitCommandError, ErrCodeQueryShort)
}

func TestSearchCommand_MissingQuery(t *testing.T) {
	opts := newTestOptions(t, "text")

	_, err := run(t, NewSearchCommand(opts))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
