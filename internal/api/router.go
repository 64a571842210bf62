package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Fund-Growth-Calculator/internal/api/middleware"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/config"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/service"
)

// Services bundles the services the HTTP API is built on.
type Services struct {
	System     *service.SystemService
	Fund       *service.FundService
	Series     *service.SeriesService
	Calculator *service.CalculatorService
	News       *service.NewsService
	Market     *service.MarketService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Use(custommiddleware.Locale)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System, services.Series)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		fundHandler := handlers.NewFundHandler(services.Fund)
		calculatorHandler := handlers.NewCalculatorHandler(services.Calculator)

		r.Route("/fund", func(r chi.Router) {
			r.Get("/", fundHandler.Funds)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", fundHandler.Fund)
				r.Get("/nav", fundHandler.NavSeries)
				r.Get("/dividend", fundHandler.DividendSeries)
				r.Get("/periods", calculatorHandler.Periods)
				r.Get("/calculator", calculatorHandler.Calculate)
				r.Post("/calculator", calculatorHandler.CalculateFromBody)
			})
		})

		r.Get("/report/periods", calculatorHandler.PeriodReport)

		newsHandler := handlers.NewNewsHandler(services.News)
		r.Route("/news", func(r chi.Router) {
			r.Get("/", newsHandler.Articles)
			r.Get("/featured", newsHandler.FeaturedArticles)
			r.Get("/{slug}", newsHandler.Article)
		})
		r.Get("/hero", newsHandler.Hero)
		r.Get("/promotion", newsHandler.Promotion)

		r.Get("/market", handlers.NewMarketHandler(services.Market).Quotes)

		r.Get("/locale", handlers.Locale)
	})

	return r
}
