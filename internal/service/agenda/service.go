package agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	appointmentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/appointment"
	paymentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/payment"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
)

// Service motor de agenda: edición, reprogramación, cambios de estado,
// listados y eliminación de citas. La creación vive en su propio use case.
type Service struct {
	appointments AppointmentRepository
	services     ServiceRepository
	barbers      BarberRepository
	payments     PaymentRepository
	hours        domain.BusinessHours
	minInterval  int
	logger       Logger
}

// NewService crea el servicio de agenda. minInterval es el intervalo mínimo
// de agenda en minutos (schedule.min_interval_minutes).
func NewService(
	appointments AppointmentRepository,
	services ServiceRepository,
	barbers BarberRepository,
	payments PaymentRepository,
	hours domain.BusinessHours,
	minInterval int,
	logger Logger,
) *Service {
	return &Service{
		appointments: appointments,
		services:     services,
		barbers:      barbers,
		payments:     payments,
		hours:        hours,
		minInterval:  minInterval,
		logger:       logger,
	}
}

// UpdateRequest datos para editar una cita
type UpdateRequest struct {
	BarberID  int64
	StartAt   time.Time
	ServiceID int64
	Notes     *string
}

// Update edita barbero, horario, servicio principal y notas de una cita.
// Re-deriva la hora fin de la duración del servicio indicado y repite las
// validaciones de descanso, horario y choque excluyendo la propia cita.
// No se re-valida que el barbero siga activo: una cita existente puede
// permanecer con un barbero ya desactivado. El estado no cambia.
func (s *Service) Update(ctx context.Context, appointmentID int64, req UpdateRequest) error {
	s.logger.Info("Update: appointment=%d, barber=%d, start=%s, service=%d",
		appointmentID, req.BarberID, req.StartAt.Format(time.RFC3339), req.ServiceID)

	ap, err := s.getAppointment(ctx, "Update", appointmentID)
	if err != nil {
		return err
	}

	svc, err := s.services.GetActiveByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", req.ServiceID)
			return ErrServiceNotFound
		}
		s.logger.Error("Update: failed to get service id=%d: %v", req.ServiceID, err)
		return fmt.Errorf("%w: Update - get service: %v", ErrInternal, err)
	}

	end := domain.AddMinutes(req.StartAt, svc.DurationMin)
	if err := s.validateSlot(ctx, req.BarberID, req.StartAt, end, &appointmentID); err != nil {
		return err
	}

	ap.BarberID = req.BarberID
	ap.PrimaryServiceID = &req.ServiceID
	ap.StartAt = req.StartAt
	ap.EndAt = end
	ap.Notes = req.Notes

	if err := s.appointments.Update(ctx, ap); err != nil {
		s.logger.Error("Update: failed to update appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Update - update appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Update: appointment id=%d updated", appointmentID)
	return nil
}

// Reschedule mueve una cita a otro horario reutilizando el servicio
// principal existente para derivar la duración. Si ese servicio ya no está
// en el catálogo activo, cae al intervalo mínimo de agenda como duración
// degradada explícita.
func (s *Service) Reschedule(ctx context.Context, appointmentID int64, barberID int64, newStart time.Time) error {
	s.logger.Info("Reschedule: appointment=%d, barber=%d, start=%s",
		appointmentID, barberID, newStart.Format(time.RFC3339))

	ap, err := s.getAppointment(ctx, "Reschedule", appointmentID)
	if err != nil {
		return err
	}

	duration := s.minInterval
	if ap.PrimaryServiceID != nil {
		svc, err := s.services.GetActiveByID(ctx, *ap.PrimaryServiceID)
		switch {
		case err == nil:
			duration = svc.DurationMin
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("Reschedule: service id=%d no longer available, falling back to %d minutes",
				*ap.PrimaryServiceID, s.minInterval)
		default:
			s.logger.Error("Reschedule: failed to get service id=%d: %v", *ap.PrimaryServiceID, err)
			return fmt.Errorf("%w: Reschedule - get service: %v", ErrInternal, err)
		}
	}

	end := domain.AddMinutes(newStart, duration)
	if err := s.validateSlot(ctx, barberID, newStart, end, &appointmentID); err != nil {
		return err
	}

	ap.BarberID = barberID
	ap.StartAt = newStart
	ap.EndAt = end

	if err := s.appointments.Update(ctx, ap); err != nil {
		s.logger.Error("Reschedule: failed to update appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Reschedule - update appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Reschedule: appointment id=%d moved", appointmentID)
	return nil
}

// Cancel pasa la cita a CANCELLED. La transición es incondicional: cancelar
// una cita ya terminal se permite y es idempotente en efecto.
func (s *Service) Cancel(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Cancel: appointment=%d", appointmentID)
	return s.setStatus(ctx, "Cancel", appointmentID, domain.StatusCancelled)
}

// MarkNoShow pasa la cita a NO_SHOW, también de forma incondicional
func (s *Service) MarkNoShow(ctx context.Context, appointmentID int64) error {
	s.logger.Info("MarkNoShow: appointment=%d", appointmentID)
	return s.setStatus(ctx, "MarkNoShow", appointmentID, domain.StatusNoShow)
}

// ListByRange devuelve las citas del rango ordenadas por hora de inicio,
// con filtros opcionales por barbero y estado
func (s *Service) ListByRange(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	appointments, err := s.appointments.ListByRange(ctx, filter)
	if err != nil {
		s.logger.Error("ListByRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByRange - repository error: %v", ErrInternal, err)
	}
	return appointments, nil
}

// Delete elimina físicamente una cita. Se rechaza con ErrPaymentExists si
// la cita ya tiene cobro: primero hay que borrar el cobro.
func (s *Service) Delete(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Delete: appointment=%d", appointmentID)

	_, err := s.payments.GetByAppointment(ctx, appointmentID)
	if err == nil {
		s.logger.Warn("Delete: appointment id=%d has a payment, refusing", appointmentID)
		return ErrPaymentExists
	}
	if !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		s.logger.Error("Delete: failed to check payment for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - check payment: %v", ErrInternal, err)
	}

	if err := s.appointments.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: failed to delete appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - delete appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", appointmentID)
	return nil
}

// Métodos auxiliares

func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	ap, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: failed to get appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - get appointment: %v", ErrInternal, op, err)
	}
	return ap, nil
}

func (s *Service) setStatus(ctx context.Context, op string, id int64, status domain.AppointmentStatus) error {
	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: failed to update status for appointment id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
	}
	s.logger.Info("%s: appointment id=%d set to %s", op, id, status)
	return nil
}
