package create_service

import (
	"errors"
	"net/http"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	"github.com/jpinedac/BRB-AgendaService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "datos del servicio inválidos"
)

// CreateServiceRequest modelo HTTP del request
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	BarberEarning   float64 `json:"barberEarning"`
	ShopLiquidation float64 `json:"shopLiquidation"`
	DurationMin     int     `json:"durationMin"`
}

// CreateServiceResponse modelo HTTP de la respuesta
type CreateServiceResponse struct {
	ID int64 `json:"id"`
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	id, err := h.service.CreateService(r.Context(), &domain.Service{
		Name:            req.Name,
		Price:           req.Price,
		BarberEarning:   req.BarberEarning,
		ShopLiquidation: req.ShopLiquidation,
		DurationMin:     req.DurationMin,
		Active:          true,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /services - Failed to create service: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, name=%s", id, req.Name)
	handlers.RespondJSON(w, http.StatusCreated, CreateServiceResponse{ID: id})
}
