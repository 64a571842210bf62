package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/cms"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/config"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/database"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/logging"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/navfeed"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/repository"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/scheduler"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/service"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logging.SetGlobalLogger(logger)

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	schemaVersion, err := database.Migrate(startCtx, db)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Str("path", cfg.Database.Path).Int64("schema_version", schemaVersion).Msg("Connected to database")

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	dividendRepo := repository.NewDividendRepository(db)

	if cfg.Data.NavFile != "" {
		importService := service.NewImportService(db, fundRepo, dividendRepo, logger)
		if _, err := importService.ImportFiles(startCtx, request.SeedFund{
			Name:     cfg.Data.FundName,
			Isin:     cfg.Data.FundIsin,
			Symbol:   cfg.Data.FundSymbol,
			Currency: cfg.Data.FundCurrency,

			NameAr:            cfg.Data.FundNameAr,
			Description:       cfg.Data.FundDescription,
			DescriptionAr:     cfg.Data.FundDescriptionAr,
			RiskLevel:         cfg.Data.FundRiskLevel,
			IsShariaCompliant: cfg.Data.FundSharia,
		}, cfg.Data.NavFile, cfg.Data.DividendFile); err != nil {
			logger.Fatal().Err(err).Msg("Failed to import static series")
		}
	}

	// Create services
	features := map[string]bool{
		"calculator":  true,
		"cms":         cfg.CMS.BaseURL != "",
		"nav_refresh": cfg.Feed.BaseURL != "" && cfg.Scheduler.Enabled,
		"market":      cfg.Feed.BaseURL != "",
	}
	systemService := service.NewSystemService(db, features)
	fundService := service.NewFundService(fundRepo, dividendRepo)
	seriesService := service.NewSeriesService(fundRepo, dividendRepo, logger)
	calculatorService := service.NewCalculatorService(seriesService)
	chartClient := navfeed.NewChartClient(cfg.Feed.BaseURL)
	marketService := service.NewMarketService(chartClient, service.DefaultMarketInstruments(), cfg.Feed.QuoteTTL, logger)
	newsService := service.NewNewsService(cms.NewClient(cfg.CMS.BaseURL, cfg.CMS.Token, cfg.CMS.Timeout), logger)

	if err := seriesService.Reload(startCtx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load fund series")
	}
	cancelStart()

	// Background jobs
	sched := scheduler.New(logger)
	if cfg.Scheduler.Enabled {
		if err := sched.AddJob(cfg.Scheduler.ReloadSchedule, scheduler.NewSnapshotReloadJob(seriesService)); err != nil {
			logger.Fatal().Err(err).Msg("Failed to schedule snapshot reload")
		}
		if features["nav_refresh"] {
			refreshService := service.NewRefreshService(fundRepo, chartClient, logger)
			job := scheduler.NewNavRefreshJob(refreshService, seriesService, logger)
			if err := sched.AddJob(cfg.Scheduler.RefreshSchedule, job); err != nil {
				logger.Fatal().Err(err).Msg("Failed to schedule NAV refresh")
			}
			// Catch up on closes published while the service was down. The job
			// skips scheduled ticks that fire while this run is in progress.
			go func() {
				if err := sched.RunNow(job); err != nil {
					logger.Warn().Err(err).Msg("Start-up NAV refresh failed")
				}
			}()
		}
		sched.Start()
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:     systemService,
		Fund:       fundService,
		Series:     seriesService,
		Calculator: calculatorService,
		News:       newsService,
		Market:     marketService,
	}, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Str("version", version.Version).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	sched.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	logger.Info().Msg("Server exited")
}
