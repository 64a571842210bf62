package service

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// reloadConcurrency bounds the number of funds loaded at the same time.
const reloadConcurrency = 4

// SeriesService keeps an immutable in-memory snapshot of every fund's NAV and
// dividend series. Reload builds a complete new snapshot set and swaps it in;
// readers keep using whatever snapshot they already hold.
type SeriesService struct {
	fundRepo     *repository.FundRepository
	dividendRepo *repository.DividendRepository
	log          zerolog.Logger

	mu        sync.RWMutex
	snapshots map[string]*model.FundSeries
	loadedAt  time.Time
}

// NewSeriesService creates a SeriesService with an empty snapshot set.
func NewSeriesService(
	fundRepo *repository.FundRepository,
	dividendRepo *repository.DividendRepository,
	log zerolog.Logger,
) *SeriesService {
	return &SeriesService{
		fundRepo:     fundRepo,
		dividendRepo: dividendRepo,
		log:          log.With().Str("component", "series").Logger(),
		snapshots:    map[string]*model.FundSeries{},
	}
}

// Reload loads the series of every fund and replaces the snapshot set.
// On error the previous snapshot set stays in place.
func (s *SeriesService) Reload(ctx context.Context) error {
	funds, err := s.fundRepo.GetFunds(ctx)
	if err != nil {
		return fmt.Errorf("failed to list funds: %w", err)
	}

	loaded := make([]*model.FundSeries, len(funds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reloadConcurrency)
	for i, fund := range funds {
		g.Go(func() error {
			series, err := s.load(gctx, fund)
			if err != nil {
				return err
			}
			loaded[i] = series
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	next := make(map[string]*model.FundSeries, len(loaded))
	for _, series := range loaded {
		next[series.Fund.ID] = series
	}

	s.mu.Lock()
	s.snapshots = next
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	s.log.Info().Int("funds", len(next)).Msg("Series snapshots reloaded")
	return nil
}

func (s *SeriesService) load(ctx context.Context, fund model.Fund) (*model.FundSeries, error) {
	navs, err := s.fundRepo.GetNavSeries(ctx, fund.ID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("fund %s: %w", fund.ID, err)
	}

	dividends, err := s.dividendRepo.GetDividendSeries(ctx, fund.ID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("fund %s: %w", fund.ID, err)
	}

	return &model.FundSeries{
		Fund:      fund,
		Navs:      navs,
		Dividends: dividends,
	}, nil
}

// Snapshot returns the series of a fund. A fund missing from the snapshot set,
// for example one created after the last reload, is loaded and added.
// Returns apperrors.ErrFundNotFound if the fund does not exist.
func (s *SeriesService) Snapshot(ctx context.Context, fundID string) (*model.FundSeries, error) {
	s.mu.RLock()
	series, ok := s.snapshots[fundID]
	s.mu.RUnlock()
	if ok {
		return series, nil
	}

	fund, err := s.fundRepo.GetFund(ctx, fundID)
	if err != nil {
		return nil, err
	}

	series, err = s.load(ctx, fund)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.snapshots[fundID]; ok {
		return existing, nil
	}
	next := maps.Clone(s.snapshots)
	next[fundID] = series
	s.snapshots = next

	return series, nil
}

// Snapshots returns every loaded series ordered by fund name.
func (s *SeriesService) Snapshots() []*model.FundSeries {
	s.mu.RLock()
	all := make([]*model.FundSeries, 0, len(s.snapshots))
	for _, series := range s.snapshots {
		all = append(all, series)
	}
	s.mu.RUnlock()

	slices.SortFunc(all, func(a, b *model.FundSeries) int {
		return cmp.Or(cmp.Compare(a.Fund.Name, b.Fund.Name), cmp.Compare(a.Fund.ID, b.Fund.ID))
	})
	return all
}

// LoadedAt returns when the snapshot set was last reloaded.
func (s *SeriesService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
