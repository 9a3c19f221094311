package list_days_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	"github.com/jpinedac/BRB-AgendaService/internal/service/catalog"
)

const (
	msgInvalidBarberID = "ID de barbero inválido"
	msgBarberNotFound  = "barbero no encontrado"
)

// DayOffItem un día libre registrado
type DayOffItem struct {
	Date string  `json:"date"` // YYYY-MM-DD
	Note *string `json:"note,omitempty"`
}

// ListDaysOffResponse modelo HTTP de la respuesta
type ListDaysOffResponse struct {
	BarberID int64        `json:"barberId"`
	DaysOff  []DayOffItem `json:"daysOff"`
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

// Handle GET /api/v1/barbers/{barberId}/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/days-off - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	daysOff, err := h.service.ListDaysOff(r.Context(), barberID)
	if err != nil {
		if errors.Is(err, catalog.ErrBarberNotFound) {
			h.logger.Warn("GET /barbers/{id}/days-off - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)
			return
		}
		h.logger.Error("GET /barbers/{id}/days-off - Failed to list days off: barber_id=%d, error=%v", barberID, err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]DayOffItem, 0, len(daysOff))
	for _, d := range daysOff {
		items = append(items, DayOffItem{
			Date: d.Date.Format(domain.DateFormat),
			Note: d.Note,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, ListDaysOffResponse{BarberID: barberID, DaysOff: items})
}
