package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// jobTimeout bounds a single job run.
const jobTimeout = 5 * time.Minute

// NavRefresher appends recent NAV observations for every fund.
type NavRefresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// SeriesReloader rebuilds the in-memory series snapshots.
type SeriesReloader interface {
	Reload(ctx context.Context) error
}

// NavRefreshJob fetches recent NAVs from the feed and, when any were stored,
// reloads the series snapshots so the calculator sees them.
// At most one run is in progress at a time, whether it was started by a
// cron tick or by Scheduler.RunNow.
type NavRefreshJob struct {
	refresher NavRefresher
	reloader  SeriesReloader
	log       zerolog.Logger
	running   atomic.Bool
}

// NewNavRefreshJob creates a new NAV refresh job
func NewNavRefreshJob(refresher NavRefresher, reloader SeriesReloader, log zerolog.Logger) *NavRefreshJob {
	return &NavRefreshJob{
		refresher: refresher,
		reloader:  reloader,
		log:       log.With().Str("job", "nav_refresh").Logger(),
	}
}

// Name returns the job name
func (j *NavRefreshJob) Name() string {
	return "nav_refresh"
}

// Run executes the job. Observations stored before a partial failure are
// still published. A call made while another run is in progress returns
// immediately without refreshing.
func (j *NavRefreshJob) Run() error {
	if !j.running.CompareAndSwap(false, true) {
		j.log.Info().Msg("NAV refresh already running, skipped")
		return nil
	}
	defer j.running.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	stored, refreshErr := j.refresher.RefreshAll(ctx)
	j.log.Info().Int("stored", stored).Msg("NAV refresh finished")

	if stored > 0 {
		if err := j.reloader.Reload(ctx); err != nil {
			return err
		}
	}
	return refreshErr
}

// SnapshotReloadJob rebuilds the series snapshots from the database.
type SnapshotReloadJob struct {
	reloader SeriesReloader
}

// NewSnapshotReloadJob creates a new snapshot reload job
func NewSnapshotReloadJob(reloader SeriesReloader) *SnapshotReloadJob {
	return &SnapshotReloadJob{reloader: reloader}
}

// Name returns the job name
func (j *SnapshotReloadJob) Name() string {
	return "snapshot_reload"
}

// Run executes the job
func (j *SnapshotReloadJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	return j.reloader.Reload(ctx)
}
