package create_barber

import (
	"errors"
	"net/http"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidInput       = "el nombre del barbero es obligatorio"
)

// CreateBarberRequest modelo HTTP del request
type CreateBarberRequest struct {
	Name string `json:"name"`
}

// CreateBarberResponse modelo HTTP de la respuesta
type CreateBarberResponse struct {
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

// Handle POST /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	id, err := h.service.CreateBarber(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /barbers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /barbers - Failed to create barber: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /barbers - Barber created: barber_id=%d", id)
	handlers.RespondJSON(w, http.StatusCreated, CreateBarberResponse{ID: id})
}
