package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	stored int
	err    error
	calls  int
}

func (f *fakeRefresher) RefreshAll(context.Context) (int, error) {
	f.calls++
	return f.stored, f.err
}

type fakeReloader struct {
	err   error
	calls int
}

func (f *fakeReloader) Reload(context.Context) error {
	f.calls++
	return f.err
}

func TestNavRefreshJob(t *testing.T) {
	t.Run("reloads when observations were stored", func(t *testing.T) {
		refresher := &fakeRefresher{stored: 3}
		reloader := &fakeReloader{}

		err := NewNavRefreshJob(refresher, reloader, zerolog.Nop()).Run()
		require.NoError(t, err)
		assert.Equal(t, 1, reloader.calls)
	})

	t.Run("skips reload when nothing was stored", func(t *testing.T) {
		reloader := &fakeReloader{}

		err := NewNavRefreshJob(&fakeRefresher{}, reloader, zerolog.Nop()).Run()
		require.NoError(t, err)
		assert.Equal(t, 0, reloader.calls)
	})

	t.Run("publishes partial results and reports the failure", func(t *testing.T) {
		refreshErr := errors.New("feed down for one symbol")
		reloader := &fakeReloader{}

		err := NewNavRefreshJob(&fakeRefresher{stored: 1, err: refreshErr}, reloader, zerolog.Nop()).Run()
		assert.ErrorIs(t, err, refreshErr)
		assert.Equal(t, 1, reloader.calls)
	})

	t.Run("reload failure is returned", func(t *testing.T) {
		reloadErr := errors.New("db locked")

		err := NewNavRefreshJob(&fakeRefresher{stored: 1}, &fakeReloader{err: reloadErr}, zerolog.Nop()).Run()
		assert.ErrorIs(t, err, reloadErr)
	})
}

type blockingRefresher struct {
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (b *blockingRefresher) RefreshAll(context.Context) (int, error) {
	b.calls.Add(1)
	b.started <- struct{}{}
	<-b.release
	return 0, nil
}

func TestNavRefreshJob_SkipsOverlappingRuns(t *testing.T) {
	refresher := &blockingRefresher{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	job := NewNavRefreshJob(refresher, &fakeReloader{}, zerolog.Nop())
	s := New(zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		done <- s.RunNow(job)
	}()
	<-refresher.started

	// A second run while the first is in progress must not reach the feed.
	require.NoError(t, job.Run())
	assert.Equal(t, int32(1), refresher.calls.Load())

	close(refresher.release)
	require.NoError(t, <-done)

	// Once finished, the job runs again.
	go func() {
		<-refresher.started
	}()
	require.NoError(t, job.Run())
	assert.Equal(t, int32(2), refresher.calls.Load())
}

func TestSnapshotReloadJob(t *testing.T) {
	reloader := &fakeReloader{}
	job := NewSnapshotReloadJob(reloader)

	assert.Equal(t, "snapshot_reload", job.Name())
	require.NoError(t, job.Run())
	assert.Equal(t, 1, reloader.calls)
}

func TestScheduler_AddJob(t *testing.T) {
	s := New(zerolog.Nop())

	require.NoError(t, s.AddJob("@every 15m", NewSnapshotReloadJob(&fakeReloader{})))
	require.NoError(t, s.AddJob("0 30 18 * * MON-FRI", NewNavRefreshJob(&fakeRefresher{}, &fakeReloader{}, zerolog.Nop())))
	assert.Equal(t, 2, s.Entries())

	assert.Error(t, s.AddJob("not a schedule", NewSnapshotReloadJob(&fakeReloader{})))
	assert.Equal(t, 2, s.Entries())
}

func TestScheduler_RunNow(t *testing.T) {
	s := New(zerolog.Nop())
	reloader := &fakeReloader{}

	require.NoError(t, s.RunNow(NewSnapshotReloadJob(reloader)))
	assert.Equal(t, 1, reloader.calls)

	s.Start()
	s.Stop()
}
