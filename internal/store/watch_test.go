package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
)

func TestWatch_EvaluatesImmediately(t *testing.T) {
	s := createTestStore(t)

	var calls int
	var last []domain.Entry
	cancel := Watch(s, All(), func(entries []domain.Entry, err error) {
		require.NoError(t, err)
		calls++
		last = entries
	})
	defer cancel()

	assert.Equal(t, 1, calls)
	assert.Empty(t, last)
}

func TestWatch_ObservesEveryWriteBeforeItReturns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	var counts []int
	cancel := Watch(s, BySide(domain.SideOffense), func(entries []domain.Entry, err error) {
		require.NoError(t, err)
		counts = append(counts, len(entries))
	})
	defer cancel()

	id, err := s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, counts)

	_, err = s.Add(ctx, cover3(), domain.SideDefense)
	require.NoError(t, err)
	_, err = s.Update(ctx, id, domain.Patch{Notes: domain.Ref("x")})
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, id))

	// One callback per write, no coalescing, even when the result is unchanged.
	assert.Equal(t, []int{0, 1, 1, 1, 0}, counts)
}

func TestWatch_FailedWriteDoesNotNotify(t *testing.T) {
	s := createTestStore(t)

	calls := 0
	cancel := Watch(s, All(), func([]domain.Entry, error) { calls++ })
	defer cancel()

	_, err := s.Update(context.Background(), 404, domain.Patch{Notes: domain.Ref("x")})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWatch_Cancel(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	calls := 0
	cancel := Watch(s, All(), func([]domain.Entry, error) { calls++ })
	assert.Equal(t, 1, s.Watching())

	cancel()
	cancel()
	assert.Equal(t, 0, s.Watching())

	_, err := s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWatch_CancelFromCallback(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	calls := 0
	var cancel func()
	cancel = Watch(s, All(), func([]domain.Entry, error) {
		calls++
		if calls == 2 {
			cancel()
		}
	})

	_, err := s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)
	_, err = s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestWatch_GameContext(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	var seen []domain.GameContext
	cancel := Watch(s, CurrentGameContext(), func(gc domain.GameContext, err error) {
		require.NoError(t, err)
		seen = append(seen, gc)
	})
	defer cancel()

	_, err := s.UpdateGameContext(ctx, domain.GameContextPatch{Down: domain.Ref(2)})
	require.NoError(t, err)
	require.NoError(t, s.ClearGameContext(ctx))

	require.Len(t, seen, 3)
	assert.Equal(t, 1, seen[0].Down)
	assert.Equal(t, 2, seen[1].Down)
	assert.Equal(t, domain.DefaultGameContext(), seen[2])
}

func TestWatch_Deterministic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)
	_, err = s.Add(ctx, cover3(), domain.SideDefense)
	require.NoError(t, err)

	var results [][]domain.Entry
	for i := 0; i < 2; i++ {
		cancel := Watch(s, All(), func(entries []domain.Entry, err error) {
			require.NoError(t, err)
			results = append(results, entries)
		})
		cancel()
	}
	assert.Equal(t, results[0], results[1])
}
