package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/testutil"
)

// createTestStore opens a fresh database under t.TempDir with a step clock.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithClock(testutil.NewStepClock().Now), WithLogger(discardLogger()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func meshPost() domain.NewEntry {
	return domain.NewEntry{
		PlayID:         "p1",
		Playbook:       "Eagles",
		FormationGroup: "Gun",
		Formation:      "Bunch",
		PlayName:       "Mesh Post",
		PlayType:       "pass",
	}
}

func cover3() domain.NewEntry {
	return domain.NewEntry{
		PlayID:         "d1",
		Playbook:       "Eagles",
		FormationGroup: "4-3",
		Formation:      "4-3 Over",
		PlayName:       "Cover 3 Sky",
		PlayType:       "zone",
	}
}
