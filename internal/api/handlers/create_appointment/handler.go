package create_appointment

import (
	"errors"
	"net/http"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	createAppointment "github.com/jpinedac/BRB-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidStartAt       = "formato de fecha y hora inválido, se espera RFC3339"
	msgServiceNotFound      = "servicio no encontrado"
	msgBarberInactive       = "el barbero no está disponible"
	msgBarberDayOff         = "el barbero descansa ese día"
	msgOutsideBusinessHours = "la cita queda fuera del horario de atención"
	msgInvalidInterval      = "el intervalo de la cita es inválido"
	msgScheduleConflict     = "el horario choca con otra cita"
	msgInvalidInput         = "datos de la solicitud inválidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrBarberInactive):
			h.logger.Warn("POST /appointments - Barber unavailable: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberInactive)

		case errors.Is(err, createAppointment.ErrBarberDayOff):
			h.logger.Warn("POST /appointments - Barber day off: barber_id=%d", req.BarberID)
			handlers.RespondConflict(w, msgBarberDayOff)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: barber_id=%d, start=%s", req.BarberID, req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidInterval):
			h.logger.Warn("POST /appointments - Invalid interval: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createAppointment.ErrScheduleConflict):
			h.logger.Warn("POST /appointments - Schedule conflict: barber_id=%d, start=%s", req.BarberID, req.StartAt)
			handlers.RespondConflict(w, msgScheduleConflict)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: barber_id=%d, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, barber_id=%d", result.ID, result.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
