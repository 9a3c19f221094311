package list_barbers

import (
	"net/http"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// BarberItem un barbero en el listado
type BarberItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ListBarbersResponse modelo HTTP de la respuesta
type ListBarbersResponse struct {
	Barbers []BarberItem `json:"barbers"`
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

// Handle GET /api/v1/barbers?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	barbers, err := h.service.ListBarbers(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(barbers))
}

func fromDomain(barbers []*domain.Barber) *ListBarbersResponse {
	items := make([]BarberItem, 0, len(barbers))
	for _, b := range barbers {
		items = append(items, BarberItem{ID: b.ID, Name: b.Name, Active: b.Active})
	}
	return &ListBarbersResponse{Barbers: items}
}
