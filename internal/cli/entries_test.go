package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/testutil"
)

func TestAddCommand(t *testing.T) {
	opts := newTestOptions(t, "text")

	out := mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost, "--tag", "money", "--tag", " money ")
	assert.Equal(t, "Added #1 Mesh Post (pass) [money]\n", out)

	out = mustRun(t, NewAddCommand(opts), testutil.PlayCover3Sky)
	assert.Equal(t, "Added #2 Cover 3 Sky (zone)\n", out)
}

func TestAddCommand_DuplicateJSON(t *testing.T) {
	opts := newTestOptions(t, "json")
	mustRun(t, NewAddCommand(opts), testutil.PlayPowerO)

	out := mustRun(t, NewAddCommand(opts), testutil.PlayPowerO)

	var res AddResult
	resp := decodeResponse(t, out, &res)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, res.Duplicate)
	assert.Equal(t, int64(2), res.Entry.ID)
	assert.Equal(t, "Singleback", res.Entry.FormationGroup)
	assert.Equal(t, "Singleback Ace", res.Entry.Formation)
	assert.Equal(t, "Eagles", res.Entry.Playbook)
}

func TestAddCommand_UnknownPlay(t *testing.T) {
	opts := newTestOptions(t, "text")

	out, err := run(t, NewAddCommand(opts), "no-such-play")
	requireExit(t, err, ExitFailure, ErrCodeNotFound)
	assert.Contains(t, out, `Error [E005]: play "no-such-play" not found in catalog`)
}

func TestRateCommand(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)

	out := mustRun(t, NewRateCommand(opts), "1", "4")
	assert.Equal(t, "Updated #1 Mesh Post (pass) ★★★★☆\n", out)

	out = mustRun(t, NewRateCommand(opts), "1", "0")
	assert.Equal(t, "Updated #1 Mesh Post (pass)\n", out)
}

func TestRateCommand_Errors(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)

	tests := []struct {
		name     string
		args     []string
		exitCode int
		code     string
	}{
		{"out of range", []string{"1", "6"}, ExitCommandError, ErrCodeInvalid},
		{"not a number", []string{"1", "five"}, ExitCommandError, ErrCodeInvalid},
		{"bad id", []string{"first", "3"}, ExitCommandError, ErrCodeInvalid},
		{"zero id", []string{"0", "3"}, ExitCommandError, ErrCodeInvalid},
		{"missing entry", []string{"99", "3"}, ExitFailure, ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, NewRateCommand(opts), tt.args...)
			requireExit(t, err, tt.exitCode, tt.code)
		})
	}
}

func TestNoteCommand(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayInsideZone)

	out := mustRun(t, NewNoteCommand(opts), "1", "motion", "the", "slot")
	assert.Equal(t, "Updated #1 Inside Zone (run) - motion the slot\n", out)

	out = mustRun(t, NewNoteCommand(opts), "1")
	assert.Equal(t, "Updated #1 Inside Zone (run)\n", out)
}

func TestUntagCommand(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost, "--tag", "red zone", "--tag", "money")

	out := mustRun(t, NewUntagCommand(opts), "red-zone", "1")
	assert.Equal(t, "Updated #1 Mesh Post (pass) [money]\n", out)

	out = mustRun(t, NewUntagCommand(opts), "not there", "1")
	assert.Equal(t, "Updated #1 Mesh Post (pass) [money]\n", out)

	_, err := run(t, NewUntagCommand(opts), "money", "7")
	requireExit(t, err, ExitFailure, ErrCodeNotFound)
}

func TestRemoveCommand(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)
	mustRun(t, NewAddCommand(opts), testutil.PlayInsideZone)

	out := mustRun(t, NewRemoveCommand(opts), "1", "2", "42")
	assert.Equal(t, "Removed 3 entries\n", out)

	out = mustRun(t, NewListCommand(opts))
	assert.Contains(t, out, "(empty)")
}

func TestRemoveCommand_JSON(t *testing.T) {
	opts := newTestOptions(t, "json")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)

	out := mustRun(t, NewRemoveCommand(opts), "1")

	var data map[string][]int64
	decodeResponse(t, out, &data)
	assert.Equal(t, []int64{1}, data["removed"])
}

func TestRemoveCommand_InvalidID(t *testing.T) {
	opts := newTestOptions(t, "text")

	out, err := run(t, NewRemoveCommand(opts), "abc")
	requireExit(t, err, ExitCommandError, ErrCodeInvalid)
	require.Contains(t, out, `invalid entry id "abc"`)
}
