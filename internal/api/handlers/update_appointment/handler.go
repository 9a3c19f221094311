package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/service/agenda"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidStartAt       = "formato de fecha y hora inválido, se espera RFC3339"
	msgAppointmentNotFound  = "cita no encontrada"
	msgServiceNotFound      = "servicio no encontrado"
	msgBarberDayOff         = "el barbero descansa ese día"
	msgOutsideBusinessHours = "la cita queda fuera del horario de atención"
	msgInvalidInterval      = "el intervalo de la cita es inválido"
	msgScheduleConflict     = "el horario choca con otra cita"
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

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	if err := h.service.Update(r.Context(), appointmentID, serviceReq); err != nil {
		switch {
		case errors.Is(err, agenda.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, agenda.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, agenda.ErrBarberDayOff):
			h.logger.Warn("PUT /appointments/{id} - Barber day off: barber_id=%d", req.BarberID)
			handlers.RespondConflict(w, msgBarberDayOff)

		case errors.Is(err, agenda.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /appointments/{id} - Outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, agenda.ErrInvalidInterval):
			h.logger.Warn("PUT /appointments/{id} - Invalid interval: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, agenda.ErrScheduleConflict):
			h.logger.Warn("PUT /appointments/{id} - Schedule conflict: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgScheduleConflict)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated: appointment_id=%d", appointmentID)
	handlers.RespondNoContent(w)
}
