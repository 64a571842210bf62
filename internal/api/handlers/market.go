package handlers

import (
	"net/http"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/response"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/service"
)

// MarketHandler handles HTTP requests for the market overview.
type MarketHandler struct {
	marketService *service.MarketService
}

// NewMarketHandler creates a new MarketHandler with the provided service dependency.
func NewMarketHandler(marketService *service.MarketService) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// Quotes handles GET requests for the market overview.
// Instruments the feed cannot quote carry placeholder values with dataSource "mock".
//
// Endpoint: GET /api/market
// Response: 200 OK with array of MarketQuote
func (h *MarketHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, r, http.StatusOK, h.marketService.Quotes(r.Context()))
}
