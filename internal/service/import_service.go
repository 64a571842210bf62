package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/dataload"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/repository"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/validation"
	"github.com/rs/zerolog"
)

// ImportSummary reports what a static data import stored.
type ImportSummary struct {
	Fund        model.Fund
	FundCreated bool
	Navs        int
	Dividends   int
}

// ImportService loads static NAV and dividend files into the database.
type ImportService struct {
	db           *sql.DB
	fundRepo     *repository.FundRepository
	dividendRepo *repository.DividendRepository
	log          zerolog.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(
	db *sql.DB,
	fundRepo *repository.FundRepository,
	dividendRepo *repository.DividendRepository,
	log zerolog.Logger,
) *ImportService {
	return &ImportService{
		db:           db,
		fundRepo:     fundRepo,
		dividendRepo: dividendRepo,
		log:          log.With().Str("component", "import").Logger(),
	}
}

// ImportFiles validates and stores the series in navFile and, when set,
// dividendFile for the given fund. The fund is matched by ISIN and created
// when missing. NAVs are upserted by date; dividends replace the stored ones.
// Nothing is written when any file fails validation, and all writes are
// committed together or not at all.
func (s *ImportService) ImportFiles(ctx context.Context, fund request.SeedFund, navFile, dividendFile string) (ImportSummary, error) {
	if err := validation.ValidateSeedFund(fund); err != nil {
		return ImportSummary{}, err
	}

	navRecords, err := dataload.ReadNavRecords(navFile)
	if err != nil {
		return ImportSummary{}, err
	}
	navs, err := validation.ValidateNavRecords(navRecords)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("%s: %w", navFile, err)
	}

	var dividends []model.DividendObservation
	if dividendFile != "" {
		dividendRecords, err := dataload.ReadDividendRecords(dividendFile)
		if err != nil {
			return ImportSummary{}, err
		}
		dividends, err = validation.ValidateDividendRecords(dividendRecords)
		if err != nil {
			return ImportSummary{}, fmt.Errorf("%s: %w", dividendFile, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	fundRepo := s.fundRepo.WithTx(tx)
	stored, created, err := ensureFund(ctx, fundRepo, fund)
	if err != nil {
		return ImportSummary{}, err
	}

	if err := fundRepo.InsertNavs(ctx, stored.ID, navs); err != nil {
		return ImportSummary{}, err
	}
	if dividendFile != "" {
		if err := s.dividendRepo.WithTx(tx).ReplaceDividends(ctx, stored.ID, dividends); err != nil {
			return ImportSummary{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportSummary{}, fmt.Errorf("failed to commit import: %w", err)
	}

	s.log.Info().
		Str("fund", stored.Name).
		Int("navs", len(navs)).
		Int("dividends", len(dividends)).
		Bool("fund_created", created).
		Msg("Static series imported")

	return ImportSummary{
		Fund:        stored,
		FundCreated: created,
		Navs:        len(navs),
		Dividends:   len(dividends),
	}, nil
}

func ensureFund(ctx context.Context, fundRepo *repository.FundRepository, fund request.SeedFund) (model.Fund, bool, error) {
	existing, err := fundRepo.GetFundByIsin(ctx, fund.Isin)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrFundNotFound) {
		return model.Fund{}, false, err
	}

	created, err := fundRepo.InsertFund(ctx, model.Fund{
		Name:              fund.Name,
		NameAr:            fund.NameAr,
		Description:       fund.Description,
		DescriptionAr:     fund.DescriptionAr,
		Isin:              fund.Isin,
		Symbol:            fund.Symbol,
		Currency:          fund.Currency,
		RiskLevel:         fund.RiskLevel,
		IsShariaCompliant: fund.IsShariaCompliant,
	})
	if err != nil {
		return model.Fund{}, false, err
	}
	return created, true, nil
}
