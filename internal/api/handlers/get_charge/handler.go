package get_charge

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/service/billing"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgPaymentNotFound      = "la cita no tiene cobro registrado"
)

type Handler struct {
	service BillingService
	logger  Logger
}

func NewHandler(service BillingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/charge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/charge - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	charge, err := h.service.GetCharge(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, billing.ErrPaymentNotFound) {
			h.logger.Warn("GET /appointments/{id}/charge - Payment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)
			return
		}
		h.logger.Error("GET /appointments/{id}/charge - Failed to get charge: appointment_id=%d, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceCharge(charge))
}
