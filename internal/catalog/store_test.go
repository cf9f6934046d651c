package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playsheet/internal/domain"
	"github.com/roach88/playsheet/internal/testutil"
)

// gatedSource counts fetches and blocks each one until release is closed.
type gatedSource struct {
	fetches atomic.Int32
	release chan struct{}
	data    []byte
	err     error
}

func (s *gatedSource) Fetch(ctx context.Context) ([]byte, error) {
	s.fetches.Add(1)
	<-s.release
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func (s *gatedSource) Name() string { return "gated" }

func TestStore_ConcurrentLoadSharesOneFetch(t *testing.T) {
	src := &gatedSource{release: make(chan struct{}), data: []byte(testutil.SampleCatalogJSON)}
	s := New(src)

	const callers = 10
	results := make([]*Catalog, callers)
	errs := make([]error, callers)

	var started, done sync.WaitGroup
	for i := 0; i < callers; i++ {
		started.Add(1)
		done.Add(1)
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i], errs[i] = s.Load(context.Background())
		}(i)
	}
	started.Wait()

	// Give every caller time to join the in-flight load.
	require.Eventually(t, func() bool { return src.fetches.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(src.release)
	done.Wait()

	assert.Equal(t, int32(1), src.fetches.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
	assert.True(t, s.Ready())
}

func TestStore_LoadCachesSuccess(t *testing.T) {
	src := &gatedSource{release: make(chan struct{}), data: []byte(testutil.SampleCatalogJSON)}
	close(src.release)
	s := New(src)

	first, err := s.Load(context.Background())
	require.NoError(t, err)
	second, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), src.fetches.Load())
}

func TestStore_FailedLoadIsNotCached(t *testing.T) {
	src := &gatedSource{release: make(chan struct{}), err: errors.New("connection refused")}
	close(src.release)
	s := New(src)

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.ErrorContains(t, err, "connection refused")
	assert.False(t, s.Ready())

	src.err = nil
	src.data = []byte(testutil.SampleCatalogJSON)
	cat, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, cat.PlayCount())
	assert.Equal(t, int32(2), src.fetches.Load())
}

func TestStore_InvalidDocument(t *testing.T) {
	s := New(BytesSource{Label: "inline", Data: []byte(`{"playbooks": 3}`)})

	_, err := s.Load(context.Background())
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, OpValidate, le.Op)
	assert.Equal(t, "inline", le.Source)
}

func TestStore_CancelledCallerStopsWaiting(t *testing.T) {
	src := &gatedSource{release: make(chan struct{}), data: []byte(testutil.SampleCatalogJSON)}
	s := New(src)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := s.Load(ctx)
		errCh <- err
	}()

	require.Eventually(t, func() bool { return src.fetches.Load() == 1 }, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	// The shared fetch keeps going for other callers.
	close(src.release)
	cat, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cat)
	assert.Equal(t, int32(1), src.fetches.Load())
}

func TestStore_LookupsBeforeLoad(t *testing.T) {
	s := New(BytesSource{Data: []byte(testutil.SampleCatalogJSON)})

	assert.False(t, s.Ready())
	assert.Nil(t, s.Catalog())
	_, ok := s.Playbook("eagles-off")
	assert.False(t, ok)
	_, ok = s.Play(testutil.PlayMeshPost)
	assert.False(t, ok)
	assert.Nil(t, s.Playbooks("", ""))
}

func TestStore_LookupsAfterLoad(t *testing.T) {
	s := New(BytesSource{Data: []byte(testutil.SampleCatalogJSON)})
	_, err := s.Load(context.Background())
	require.NoError(t, err)

	pb, ok := s.Playbook("air-raid-off")
	require.True(t, ok)
	assert.Equal(t, CategoryAlternate, pb.Category)

	ref, ok := s.Play(testutil.PlayCover3Sky)
	require.True(t, ok)
	assert.Equal(t, domain.SideDefense, ref.Side)

	assert.Len(t, s.Playbooks(domain.SideOffense, ""), 2)
}
