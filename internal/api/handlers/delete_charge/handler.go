package delete_charge

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
	msgAppointmentNotFound  = "cita no encontrada"
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

// Handle DELETE /api/v1/appointments/{appointmentId}/charge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id}/charge - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.DeleteCharge(r.Context(), appointmentID); err != nil {
		switch {
		case errors.Is(err, billing.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id}/charge - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, billing.ErrPaymentNotFound):
			h.logger.Warn("DELETE /appointments/{id}/charge - Payment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("DELETE /appointments/{id}/charge - Failed to delete charge: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id}/charge - Charge deleted: appointment_id=%d", appointmentID)
	handlers.RespondNoContent(w)
}
