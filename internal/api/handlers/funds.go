package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/response"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/locale"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/service"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/validation"
)

// FundResponse is a fund with its title and description resolved for the
// request locale. Arabic requests fall back to the English text when no
// Arabic text is stored.
type FundResponse struct {
	model.Fund
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func localizeFund(loc locale.Locale, f model.Fund) FundResponse {
	return FundResponse{
		Fund:    f,
		Title:   loc.Pick(f.Name, f.NameAr),
		Summary: loc.Pick(f.Description, f.DescriptionAr),
	}
}

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// Funds handles GET requests to retrieve all funds.
//
// Endpoint: GET /api/fund
// Response: 200 OK with array of FundResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	funds, err := h.fundService.GetFunds(r.Context())
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveFunds)
		return
	}

	loc := locale.FromContext(r.Context())
	localized := make([]FundResponse, len(funds))
	for i, f := range funds {
		localized[i] = localizeFund(loc, f)
	}

	response.RespondJSON(w, r, http.StatusOK, localized)
}

// Fund handles GET requests to retrieve a single fund.
//
// Endpoint: GET /api/fund/{uuid}
// Response: 200 OK with FundResponse
// Error: 400 Bad Request if the fund ID is invalid (validated by middleware)
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) Fund(w http.ResponseWriter, r *http.Request) {
	fund, err := h.fundService.GetFund(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveFund)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, localizeFund(locale.FromContext(r.Context()), fund))
}

// NavSeries handles GET requests for the NAV observations of a fund.
// The optional start and end query parameters (YYYY-MM-DD) bound the range inclusively.
//
// Endpoint: GET /api/fund/{uuid}/nav?start=&end=
// Response: 200 OK with array of {date, nav}
// Error: 400 Bad Request if a date is invalid or start is after end
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) NavSeries(w http.ResponseWriter, r *http.Request) {
	start, end, err := validation.ValidateDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveNavs)
		return
	}

	navs, err := h.fundService.GetNavSeries(r.Context(), chi.URLParam(r, "uuid"), start, end)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveNavs)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, navRecords(navs))
}

// DividendSeries handles GET requests for the dividends of a fund.
//
// Endpoint: GET /api/fund/{uuid}/dividend?start=&end=
// Response: 200 OK with array of {date, amount}
// Error: 400 Bad Request if a date is invalid or start is after end
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) DividendSeries(w http.ResponseWriter, r *http.Request) {
	start, end, err := validation.ValidateDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveDividends)
		return
	}

	dividends, err := h.fundService.GetDividendSeries(r.Context(), chi.URLParam(r, "uuid"), start, end)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveDividends)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, dividendRecords(dividends))
}

func navRecords(navs []model.NavObservation) []request.NavRecord {
	records := make([]request.NavRecord, len(navs))
	for i, n := range navs {
		records[i] = request.NavRecord{Date: n.Date.Format(validation.DateLayout), Nav: n.NAV}
	}
	return records
}

func dividendRecords(dividends []model.DividendObservation) []request.DividendRecord {
	records := make([]request.DividendRecord, len(dividends))
	for i, d := range dividends {
		records[i] = request.DividendRecord{Date: d.Date.Format(validation.DateLayout), Amount: d.Amount}
	}
	return records
}
