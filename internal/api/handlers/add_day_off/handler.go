package add_day_off

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	"github.com/jpinedac/BRB-AgendaService/internal/service/catalog"
)

const (
	msgInvalidBarberID    = "ID de barbero inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgBarberNotFound     = "barbero no encontrado"
	msgHasAppointments    = "el barbero tiene citas agendadas para ese día"
)

// AddDayOffRequest modelo HTTP del request
type AddDayOffRequest struct {
	Date string  `json:"date"` // YYYY-MM-DD
	Note *string `json:"note,omitempty"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/barbers/{barberId}/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/days-off - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req AddDayOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers/{id}/days-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/days-off - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.AddDayOff(r.Context(), barberID, date, req.Note); err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			h.logger.Warn("POST /barbers/{id}/days-off - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, catalog.ErrDayOffHasAppointments):
			h.logger.Warn("POST /barbers/{id}/days-off - Has appointments: barber_id=%d, date=%s", barberID, req.Date)
			handlers.RespondConflict(w, msgHasAppointments)

		default:
			h.logger.Error("POST /barbers/{id}/days-off - Failed to add day off: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers/{id}/days-off - Day off added: barber_id=%d, date=%s", barberID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
