package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
)

func TestPlaybooksCommand_Text(t *testing.T) {
	opts := newTestOptions(t, "text")

	out := mustRun(t, NewPlaybooksCommand(opts))

	assert.Equal(t,
		fmt.Sprintf("%-16s %-12s %-8s %-10s %d plays\n", "eagles-off", "Eagles", "offense", "team", 7)+
			fmt.Sprintf("%-16s %-12s %-8s %-10s %d plays\n", "eagles-def", "Eagles", "defense", "team", 2)+
			fmt.Sprintf("%-16s %-12s %-8s %-10s %d plays\n", "air-raid-off", "Air Raid", "offense", "alternate", 2),
		out)
}

func TestPlaybooksCommand_FilterJSON(t *testing.T) {
	opts := newTestOptions(t, "json")

	out := mustRun(t, NewPlaybooksCommand(opts), "--side", "offense", "--category", "alternate")

	var summaries []PlaybookSummary
	resp := decodeResponse(t, out, &summaries)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, summaries, 1)
	assert.Equal(t, "air-raid-off", summaries[0].ID)
	assert.Equal(t, domain.SideOffense, summaries[0].Side)
	assert.Equal(t, 2, summaries[0].Plays)
}

func TestPlaybooksCommand_InvalidFilters(t *testing.T) {
	opts := newTestOptions(t, "text")

	_, err := run(t, NewPlaybooksCommand(opts), "--side", "special")
	requireExit(t, err, ExitCommandError, ErrCodeInvalid)

	out, err := run(t, NewPlaybooksCommand(opts), "--category", "college")
	requireExit(t, err, ExitCommandError, ErrCodeInvalid)
	assert.Contains(t, out, `Error [E006]: invalid --category "college"`)
}

func TestPlaybooksCommand_CatalogErrors(t *testing.T) {
	opts := newTestOptions(t, "text")
	opts.Catalog = "/nonexistent/catalog.json"

	out, err := run(t, NewPlaybooksCommand(opts))
	requireExit(t, err, ExitCommandError, ErrCodeCatalog)
	assert.Contains(t, out, "Error [E003]: failed to load catalog")
}

func TestPlaybooksCommand_BadConfig(t *testing.T) {
	opts := newTestOptions(t, "json")
	opts.ConfigPath = "/nonexistent/config.yaml"

	out, err := run(t, NewPlaybooksCommand(opts))
	requireExit(t, err, ExitCommandError, ErrCodeConfig)

	resp := decodeResponse(t, out, nil)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeConfig, resp.Error.Code)
}
