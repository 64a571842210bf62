package service

import (
	"context"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/repository"
)

// FundService handles fund-related business logic operations.
type FundService struct {
	fundRepo     *repository.FundRepository
	dividendRepo *repository.DividendRepository
}

// NewFundService creates a new FundService with the provided repository dependencies.
func NewFundService(
	fundRepo *repository.FundRepository,
	dividendRepo *repository.DividendRepository,
) *FundService {
	return &FundService{
		fundRepo:     fundRepo,
		dividendRepo: dividendRepo,
	}
}

// GetFunds retrieves all funds from the database.
func (s *FundService) GetFunds(ctx context.Context) ([]model.Fund, error) {
	return s.fundRepo.GetFunds(ctx)
}

// GetFund retrieves a fund by ID.
// Returns apperrors.ErrFundNotFound if the fund does not exist.
func (s *FundService) GetFund(ctx context.Context, fundID string) (model.Fund, error) {
	return s.fundRepo.GetFund(ctx, fundID)
}

// GetNavSeries retrieves the NAV observations of a fund within an inclusive
// date range. Zero dates leave that side open.
// Returns apperrors.ErrFundNotFound if the fund does not exist.
func (s *FundService) GetNavSeries(ctx context.Context, fundID string, startDate, endDate time.Time) ([]model.NavObservation, error) {
	if _, err := s.fundRepo.GetFund(ctx, fundID); err != nil {
		return nil, err
	}
	return s.fundRepo.GetNavSeries(ctx, fundID, startDate, endDate)
}

// GetDividendSeries retrieves the dividends of a fund within an inclusive
// date range. Zero dates leave that side open.
// Returns apperrors.ErrFundNotFound if the fund does not exist.
func (s *FundService) GetDividendSeries(ctx context.Context, fundID string, startDate, endDate time.Time) ([]model.DividendObservation, error) {
	if _, err := s.fundRepo.GetFund(ctx, fundID); err != nil {
		return nil, err
	}
	return s.dividendRepo.GetDividendSeries(ctx, fundID, startDate, endDate)
}
