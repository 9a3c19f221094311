package charge_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	chargeAppointment "github.com/jpinedac/BRB-AgendaService/internal/usecase/charge_appointment"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgAppointmentNotFound  = "cita no encontrada"
	msgAlreadyCharged       = "la cita ya tiene un cobro registrado"
	msgServiceNotFound      = "servicio no encontrado"
	msgInvalidInput         = "datos del cobro inválidos"
)

type Handler struct {
	useCase ChargeAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ChargeAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/charge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/charge - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ChargeAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/charge - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, chargeAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/charge - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, chargeAppointment.ErrAlreadyCharged):
			h.logger.Warn("POST /appointments/{id}/charge - Already charged: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgAlreadyCharged)

		case errors.Is(err, chargeAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments/{id}/charge - Service not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, chargeAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/charge - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments/{id}/charge - Failed to charge: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/charge - Charged: appointment_id=%d, payment_id=%d, total=%.0f",
		appointmentID, result.PaymentID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
