package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/testutil"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "playsheet", cmd.Use)
	assert.Contains(t, cmd.Long, "playsheet")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{
		"playbooks", "search", "add", "remove", "list", "tag", "untag",
		"rate", "note", "adjust", "context", "scenario",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestContextSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"show", "set", "clear"} {
		subCmd, _, err := cmd.Find([]string{"context", name})
		require.NoError(t, err)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"config", "db", "catalog"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "flag --%s", name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestListCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	listCmd, _, err := cmd.Find([]string{"list"})
	require.NoError(t, err)

	assert.Equal(t, "offense", listCmd.Flags().Lookup("side").DefValue)
	assert.Equal(t, "all", listCmd.Flags().Lookup("situation").DefValue)
	assert.Equal(t, "formation", listCmd.Flags().Lookup("sort").DefValue)
}

func TestScenarioCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	scenarioCmd, _, err := cmd.Find([]string{"scenario"})
	require.NoError(t, err)

	assert.NotNil(t, scenarioCmd.Flags().Lookup("update"))
	assert.NotNil(t, scenarioCmd.Flags().Lookup("filter"))
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	_, err := run(t, cmd, "--format", "yaml", "playbooks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestRootCommand_EndToEnd(t *testing.T) {
	opts := newTestOptions(t, "text")
	global := []string{"--db", opts.Database, "--catalog", opts.Catalog}

	out := mustRun(t, NewRootCommand(), append([]string{"add", testutil.PlayMeshSpot}, global...)...)
	assert.Equal(t, "Added #1 Mesh Spot (pass)\n", out)

	mustRun(t, NewRootCommand(), append([]string{"tag", "money", "1"}, global...)...)

	out = mustRun(t, NewRootCommand(), append([]string{"list", "--situation", "money"}, global...)...)
	assert.Contains(t, out, "#1 Mesh Spot (pass) [money]")
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	opts := newTestOptions(t, "json")
	cmd := NewRootCommand()

	out, err := run(t, cmd, "--verbose", "--format", "json", "--db", opts.Database, "--catalog", opts.Catalog, "add", testutil.PlayMeshSpot)
	require.NoError(t, err)

	// stdout stays valid JSON with verbose logging on.
	var res AddResult
	resp := decodeResponse(t, out, &res)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, testutil.PlayMeshSpot, res.Entry.PlayID)
}
