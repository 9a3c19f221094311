package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/service/agenda"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidStartAt       = "formato de fecha y hora inválido, se espera RFC3339"
	msgAppointmentNotFound  = "cita no encontrada"
	msgBarberDayOff         = "el barbero descansa ese día"
	msgOutsideBusinessHours = "la cita queda fuera del horario de atención"
	msgInvalidInterval      = "el intervalo de la cita es inválido"
	msgScheduleConflict     = "el horario choca con otra cita"
)

// RescheduleRequest modelo HTTP del request
type RescheduleRequest struct {
	BarberID int64  `json:"barberId"`
	StartAt  string `json:"startAt"` // RFC3339
}

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

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newStart, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	if err := h.service.Reschedule(r.Context(), appointmentID, req.BarberID, newStart); err != nil {
		switch {
		case errors.Is(err, agenda.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, agenda.ErrBarberDayOff):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Barber day off: barber_id=%d", req.BarberID)
			handlers.RespondConflict(w, msgBarberDayOff)

		case errors.Is(err, agenda.ErrOutsideBusinessHours):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, agenda.ErrInvalidInterval):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid interval: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, agenda.ErrScheduleConflict):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Schedule conflict: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgScheduleConflict)

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/reschedule - Appointment moved: appointment_id=%d", appointmentID)
	handlers.RespondNoContent(w)
}
