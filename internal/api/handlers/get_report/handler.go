package get_report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	"github.com/jpinedac/BRB-AgendaService/internal/service/reports"
)

const (
	msgMissingRange    = "se requieren los parámetros from y to (YYYY-MM-DD)"
	msgInvalidDate     = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidRange    = "el rango de fechas es inválido"
	msgInvalidBarberID = "ID de barbero inválido"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/summary?from=YYYY-MM-DD&to=YYYY-MM-DD&barberId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /reports/summary - Missing range: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /reports/summary - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /reports/summary - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var barberID *int64
	if barberIDStr := query.Get("barberId"); barberIDStr != "" {
		id, err := strconv.ParseInt(barberIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reports/summary - Invalid barber ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		barberID = &id
	}

	// El límite superior cubre el día "to" completo
	summary, err := h.service.Summarize(r.Context(), from, to.AddDate(0, 0, 1), barberID)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidRange) {
			h.logger.Warn("GET /reports/summary - Invalid range: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /reports/summary - Failed to build report: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromSummary(summary)
	// Se devuelve el rango tal como se pidió, no el límite exclusivo interno
	response.From = fromStr
	response.To = toStr

	h.logger.Info("GET /reports/summary - Report built: from=%s, to=%s, payments=%d", fromStr, toStr, len(summary.Payments))
	handlers.RespondJSON(w, http.StatusOK, response)
}
