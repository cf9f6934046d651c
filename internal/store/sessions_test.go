package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/testutil"
)

func TestGameSessions_PassThrough(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	played := time.Date(2025, 10, 4, 20, 0, 0, 0, time.UTC)
	sid, err := s.AddGameSession(ctx, domain.GameSession{Opponent: "Cowboys", Date: played, Result: "W 24-17"})
	require.NoError(t, err)

	_, err = s.AddGameSession(ctx, domain.GameSession{Opponent: "Giants"})
	require.NoError(t, err)

	sessions, err := s.GameSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Cowboys", sessions[0].Opponent)
	assert.True(t, sessions[0].Date.Equal(played))
	assert.True(t, sessions[1].Date.Equal(testutil.Epoch), "zero date is stamped from the clock")

	_, err = s.AddPlayPerformance(ctx, domain.PlayPerformance{
		SessionID: sid, PlayID: "p1", CallCount: 6, SuccessCount: 4, YardsGained: 51,
	})
	require.NoError(t, err)

	perf, err := s.PlayPerformance(ctx, sid)
	require.NoError(t, err)
	require.Len(t, perf, 1)
	assert.Equal(t, "p1", perf[0].PlayID)
	assert.Equal(t, 51, perf[0].YardsGained)

	none, err := s.PlayPerformance(ctx, sid+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlayPerformance_UnknownSession(t *testing.T) {
	s := createTestStore(t)

	_, err := s.AddPlayPerformance(context.Background(), domain.PlayPerformance{SessionID: 7, PlayID: "p1"})
	assert.True(t, IsStorage(err), "foreign key enforcement rejects unknown sessions")
}
