package list_services

import (
	"net/http"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// ServiceItem un servicio del catálogo
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	BarberEarning   float64 `json:"barberEarning"`
	ShopLiquidation float64 `json:"shopLiquidation"`
	DurationMin     int     `json:"durationMin"`
	Active          bool    `json:"active"`
}

// ListServicesResponse modelo HTTP de la respuesta
type ListServicesResponse struct {
	Services []ServiceItem `json:"services"`
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

// Handle GET /api/v1/services?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	services, err := h.service.ListServices(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(services))
}

func fromDomain(services []*domain.Service) *ListServicesResponse {
	items := make([]ServiceItem, 0, len(services))
	for _, s := range services {
		items = append(items, ServiceItem{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			BarberEarning:   s.BarberEarning,
			ShopLiquidation: s.ShopLiquidation,
			DurationMin:     s.DurationMin,
			Active:          s.Active,
		})
	}
	return &ListServicesResponse{Services: items}
}
