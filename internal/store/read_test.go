package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
)

func TestQueryBySide_Partitions(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)
	_, err = s.Add(ctx, cover3(), domain.SideDefense)
	require.NoError(t, err)

	offense, err := s.QueryBySide(ctx, domain.SideOffense)
	require.NoError(t, err)
	defense, err := s.QueryBySide(ctx, domain.SideDefense)
	require.NoError(t, err)
	all, err := s.QueryAll(ctx)
	require.NoError(t, err)

	require.Len(t, offense, 1)
	require.Len(t, defense, 1)
	assert.Equal(t, "Mesh Post", offense[0].PlayName)
	assert.Equal(t, "Cover 3 Sky", defense[0].PlayName)
	assert.Len(t, all, 2)
}

func TestQueryAll_EmptyIsNotNil(t *testing.T) {
	s := createTestStore(t)

	all, err := s.QueryAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestContainsPlayAndPlayIDs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	ok, err := s.ContainsPlay(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)
	_, err = s.Add(ctx, meshPost(), domain.SideOffense)
	require.NoError(t, err)
	_, err = s.Add(ctx, cover3(), domain.SideDefense)
	require.NoError(t, err)

	ok, err = s.ContainsPlay(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ids, err := s.PlayIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"p1": true, "d1": true}, ids)
}

func TestRead_StorageErrorAfterClose(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.QueryAll(context.Background())
	assert.True(t, IsStorage(err))

	_, err = s.Get(context.Background(), 1)
	assert.True(t, IsStorage(err))
}
