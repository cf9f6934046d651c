package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/testutil"
)

func TestAdjustCommand(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayCover3Sky)

	out := mustRun(t, NewAdjustCommand(opts), "1",
		"--shading", "underneath",
		"--set", "dl_stunt=texas",
		"--set", "safety_depth = deep",
		"--good-vs-formation", "Gun Bunch",
		"--good-vs-route", "Mesh",
		"--tip", "Watch the crosser",
	)

	assert.Equal(t, `Updated #1 Cover 3 Sky (zone)
  shading: underneath
  safeties: depth deep, width normal
  corners: default, man align default
  line: shift default, stunt texas; linebackers: shift default
  zone drop 0, rpo key conservative, option key qb, shell none
  good vs: Gun Bunch, Mesh
  tip: Watch the crosser
`, out)
}

func TestAdjustCommand_KeepsEarlierEdits(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayCover3Sky)
	mustRun(t, NewAdjustCommand(opts), "1", "--set", "cb_alignment=press")

	jsonOpts := *opts
	jsonOpts.Format = "json"
	out := mustRun(t, NewAdjustCommand(&jsonOpts), "1", "--shading", "none", "--set", "rpo_key=aggressive")

	var entry domain.Entry
	decodeResponse(t, out, &entry)
	require.NotNil(t, entry.DefensiveAdjustments)
	adj := entry.DefensiveAdjustments
	assert.Empty(t, adj.Shading)
	assert.Equal(t, "press", adj.Coaching.CBAlignment)
	assert.Equal(t, "aggressive", adj.Coaching.RPOKey)
}

func TestAdjustCommand_Clear(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshBlitz)
	mustRun(t, NewAdjustCommand(opts), "1", "--shading", "inside")

	out := mustRun(t, NewAdjustCommand(opts), "1", "--clear")
	assert.Equal(t, "Updated #1 Mesh Blitz (blitz)\n  no adjustments\n", out)
}

func TestAdjustCommand_Errors(t *testing.T) {
	opts := newTestOptions(t, "text")
	mustRun(t, NewAddCommand(opts), testutil.PlayMeshPost)
	mustRun(t, NewAddCommand(opts), testutil.PlayCover3Sky)

	tests := []struct {
		name     string
		args     []string
		exitCode int
		code     string
	}{
		{"offense entry", []string{"1", "--shading", "inside"}, ExitCommandError, ErrCodeInvalid},
		{"unknown shading", []string{"2", "--shading", "sideways"}, ExitCommandError, ErrCodeInvalid},
		{"unknown field", []string{"2", "--set", "blitz_depth=5"}, ExitCommandError, ErrCodeInvalid},
		{"bad option", []string{"2", "--set", "zone_drop=7"}, ExitCommandError, ErrCodeInvalid},
		{"missing value", []string{"2", "--set", "zone_drop"}, ExitCommandError, ErrCodeInvalid},
		{"missing entry", []string{"5", "--tip", "x"}, ExitFailure, ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, NewAdjustCommand(opts), tt.args...)
			requireExit(t, err, tt.exitCode, tt.code)
		})
	}
}
