package service

import (
	"context"
	"fmt"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/growth"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/locale"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"golang.org/x/sync/errgroup"
)

// CalculatorService runs the growth calculator against fund snapshots.
type CalculatorService struct {
	series *SeriesService
}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService(series *SeriesService) *CalculatorService {
	return &CalculatorService{
		series: series,
	}
}

// Calculate applies input to a fresh calculator for the fund and returns its
// output, with display strings formatted for loc.
//
// Insufficient history is reported through the output status, not as an error.
// Returns apperrors.ErrInvalidDeposit or apperrors.ErrInvalidTimeframe for
// rejected input and apperrors.ErrFundNotFound for an unknown fund.
func (s *CalculatorService) Calculate(ctx context.Context, fundID string, input model.CalculatorInput, loc locale.Locale) (model.CalculatorResult, error) {
	series, err := s.series.Snapshot(ctx, fundID)
	if err != nil {
		return model.CalculatorResult{}, err
	}

	calc := growth.NewCalculator(series.Navs, series.Dividends)
	if err := calc.SetDeposit(input.Deposit); err != nil {
		return model.CalculatorResult{}, err
	}
	if err := calc.SetTimeframe(input.Timeframe); err != nil {
		return model.CalculatorResult{}, err
	}

	out := calc.Output()
	return model.CalculatorResult{
		Fund:    series.Fund,
		Input:   calc.Input(),
		Output:  out,
		Display: display(loc, series.Fund.Currency, calc.Input(), out),
	}, nil
}

func display(loc locale.Locale, currency string, in model.CalculatorInput, out model.CalculatorOutput) model.CalculatorDisplay {
	return model.CalculatorDisplay{
		Language:       loc.Language,
		Direction:      string(loc.Direction),
		Deposit:        loc.FormatMoney(currency, in.Deposit),
		ProjectedValue: loc.FormatMoney(currency, out.ProjectedValue),
		TotalGain:      loc.FormatMoney(currency, out.TotalGain),
		DividendSum:    loc.FormatMoney(currency, out.DividendSum),
		CAGR:           loc.FormatPercent(out.CAGR),
		TotalReturn:    loc.FormatPercent(out.TotalReturn),
	}
}

// Periods returns the lookback period table of a fund.
func (s *CalculatorService) Periods(ctx context.Context, fundID string) (model.FundPeriods, error) {
	series, err := s.series.Snapshot(ctx, fundID)
	if err != nil {
		return model.FundPeriods{}, err
	}

	return model.FundPeriods{
		Fund:    series.Fund,
		Periods: growth.ComputePeriods(series.Navs),
	}, nil
}

// PeriodReport returns the lookback period table of every loaded fund,
// ordered by fund name. Funds are computed concurrently.
func (s *CalculatorService) PeriodReport(ctx context.Context) ([]model.FundPeriods, error) {
	all := s.series.Snapshots()
	report := make([]model.FundPeriods, len(all))

	g, gctx := errgroup.WithContext(ctx)
	for i, series := range all {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report[i] = model.FundPeriods{
				Fund:    series.Fund,
				Periods: growth.ComputePeriods(series.Navs),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToComputeReport, err)
	}
	return report, nil
}
