package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/navfeed"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/repository"
	"github.com/rs/zerolog"
)

// RefreshService appends recent NAV observations from the market data feed.
type RefreshService struct {
	fundRepo *repository.FundRepository
	feed     navfeed.Client
	log      zerolog.Logger
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(fundRepo *repository.FundRepository, feed navfeed.Client, log zerolog.Logger) *RefreshService {
	return &RefreshService{
		fundRepo: fundRepo,
		feed:     feed,
		log:      log.With().Str("component", "refresh").Logger(),
	}
}

// RefreshAll fetches recent closes for every fund with a symbol and stores
// the ones newer than the fund's latest NAV. A failing fund does not stop the
// others; all failures are returned together. The count of stored
// observations is returned either way.
func (s *RefreshService) RefreshAll(ctx context.Context) (int, error) {
	funds, err := s.fundRepo.GetFunds(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrFailedToRefreshNavs, err)
	}

	var errs []error
	total := 0
	for _, fund := range funds {
		if fund.Symbol == "" {
			continue
		}

		n, err := s.RefreshFund(ctx, fund)
		if err != nil {
			s.log.Warn().Err(err).Str("fund", fund.ID).Str("symbol", fund.Symbol).Msg("NAV refresh failed")
			errs = append(errs, fmt.Errorf("%s: %w", fund.Symbol, err))
			continue
		}
		total += n
	}

	if len(errs) > 0 {
		return total, fmt.Errorf("%w: %w", apperrors.ErrFailedToRefreshNavs, errors.Join(errs...))
	}
	return total, nil
}

// RefreshFund stores the feed observations of one fund that are newer than
// its latest stored NAV and returns how many were stored.
func (s *RefreshService) RefreshFund(ctx context.Context, fund model.Fund) (int, error) {
	latest, hasNavs, err := s.fundRepo.GetLatestNavDate(ctx, fund.ID)
	if err != nil {
		return 0, err
	}

	recent, err := s.feed.FetchRecentNavs(ctx, fund.Symbol)
	if err != nil {
		return 0, err
	}

	fresh := make([]model.NavObservation, 0, len(recent))
	for _, obs := range recent {
		if obs.NAV <= 0 {
			continue
		}
		if hasNavs && !obs.Date.After(latest) {
			continue
		}
		fresh = append(fresh, obs)
	}

	if err := s.fundRepo.InsertNavs(ctx, fund.ID, fresh); err != nil {
		return 0, err
	}

	if len(fresh) > 0 {
		s.log.Info().Str("symbol", fund.Symbol).Int("stored", len(fresh)).Msg("NAV observations appended")
	}
	return len(fresh), nil
}
