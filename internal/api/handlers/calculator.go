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

// CalculatorHandler serves the growth calculator and the lookback period tables.
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

// Calculate handles GET requests that run the calculator from query parameters.
// Omitted parameters take the calculator defaults. A period the fund cannot
// cover is a 200 with status period_unavailable.
//
// Endpoint: GET /api/fund/{uuid}/calculator?deposit=&timeframe=
// Response: 200 OK with CalculatorResult
// Error: 400 Bad Request if deposit or timeframe is invalid
// Error: 404 Not Found if the fund does not exist
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	input, err := validation.ValidateCalculatorQuery(request.CalculatorQuery{
		Deposit:   r.URL.Query().Get("deposit"),
		Timeframe: r.URL.Query().Get("timeframe"),
	})
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveFund)
		return
	}

	h.calculate(w, r, input)
}

// CalculateFromBody handles POST requests that run the calculator from a JSON body.
//
// Endpoint: POST /api/fund/{uuid}/calculator
// Request Body: CalculatorRequest (deposit and timeframe, both optional)
// Response: 200 OK with CalculatorResult
// Error: 400 Bad Request if the body is invalid
// Error: 404 Not Found if the fund does not exist
func (h *CalculatorHandler) CalculateFromBody(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CalculatorRequest](r)
	if err != nil {
		response.RespondError(w, r, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := validation.ValidateCalculatorRequest(req)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveFund)
		return
	}

	h.calculate(w, r, input)
}

func (h *CalculatorHandler) calculate(w http.ResponseWriter, r *http.Request, input model.CalculatorInput) {
	result, err := h.calculatorService.Calculate(
		r.Context(),
		chi.URLParam(r, "uuid"),
		input,
		locale.FromContext(r.Context()),
	)
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveFund)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, result)
}

// Periods handles GET requests for the lookback period table of a fund.
//
// Endpoint: GET /api/fund/{uuid}/periods
// Response: 200 OK with FundPeriods
// Error: 404 Not Found if the fund does not exist
func (h *CalculatorHandler) Periods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.calculatorService.Periods(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToRetrieveFund)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, periods)
}

// PeriodReport handles GET requests for the period tables of every fund.
//
// Endpoint: GET /api/report/periods
// Response: 200 OK with array of FundPeriods
// Error: 500 Internal Server Error if the report cannot be computed
func (h *CalculatorHandler) PeriodReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.calculatorService.PeriodReport(r.Context())
	if err != nil {
		respondServiceError(w, r, err, apperrors.ErrFailedToComputeReport)
		return
	}

	response.RespondJSON(w, r, http.StatusOK, report)
}
