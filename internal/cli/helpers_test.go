package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/testutil"
)

// envVars are cleared so the developer's environment cannot leak into
// command tests.
var envVars = []string{
	"PLAYSHEET_DB",
	"PLAYSHEET_CATALOG",
	"PLAYSHEET_CATALOG_URL",
	"PLAYSHEET_CATALOG_TIMEOUT",
	"PLAYSHEET_SEARCH_LIMIT",
	"PLAYSHEET_SEARCH_MIN_QUERY",
	"PLAYSHEET_LOG_LEVEL",
}

// newTestOptions points HOME at a temp dir and returns options using a
// fresh database and the sample catalog.
func newTestOptions(t *testing.T, format string) *RootOptions {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, k := range envVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testutil.SampleCatalogJSON), 0644))

	return &RootOptions{
		Format:   format,
		Database: filepath.Join(dir, "data", "playsheet.db"),
		Catalog:  catalogPath,
	}
}

// run executes a freshly built command and returns its stdout.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// mustRun is run for steps that have to succeed.
func mustRun(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := run(t, cmd, args...)
	require.NoError(t, err, "output: %s", out)
	return out
}

// decodeResponse decodes a JSON CLIResponse, with Data decoded into data.
func decodeResponse(t *testing.T, out string, data any) CLIResponse {
	t.Helper()
	var raw struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), "output: %s", out)
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.CLIResponse
}

// requireExit asserts err is an ExitError with the given exit and error
// codes.
func requireExit(t *testing.T, err error, exitCode int, code string) {
	t.Helper()
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, exitCode, exitErr.Code, "error: %v", err)
	require.Contains(t, exitErr.Message, code)
}
