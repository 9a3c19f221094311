package list_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

const (
	msgMissingRange    = "se requieren los parámetros from y to (YYYY-MM-DD)"
	msgInvalidDate     = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidBarberID = "ID de barbero inválido"
	msgInvalidStatus   = "estado inválido"
)

type Handler struct {
	service AgendaService
	logger  Logger
}

func NewHandler(service AgendaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?from=YYYY-MM-DD&to=YYYY-MM-DD&barberId=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /appointments - Missing range: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// El límite superior cubre el día "to" completo
	filter := domain.AppointmentFilter{
		Start: from,
		End:   to.AddDate(0, 0, 1),
	}

	if barberIDStr := query.Get("barberId"); barberIDStr != "" {
		barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid barber ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		filter.BarberID = &barberID
	}

	if statusStr := query.Get("status"); statusStr != "" {
		status := domain.AppointmentStatus(statusStr)
		if !validStatus(status) {
			h.logger.Warn("GET /appointments - Invalid status: %s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	appointments, err := h.service.ListByRange(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments: from=%s, to=%s", len(appointments), fromStr, toStr)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(appointments))
}

func validStatus(status domain.AppointmentStatus) bool {
	for _, s := range domain.AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}
