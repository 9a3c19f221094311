package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	appointmentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/appointment"
	paymentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/payment"
)

// Charge un cobro registrado junto con sus líneas snapshot
type Charge struct {
	Payment *domain.Payment
	Lines   []*domain.PaymentServiceLine
}

// Service servicio de facturación. Consulta y reversa de cobros; el alta de
// cobros vive en el use case de cobro.
type Service struct {
	appointments AppointmentRepository
	payments     PaymentRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService crea el servicio de facturación
func NewService(
	appointments AppointmentRepository,
	payments PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointments: appointments,
		payments:     payments,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetCharge devuelve el cobro de una cita con sus líneas
func (s *Service) GetCharge(ctx context.Context, appointmentID int64) (*Charge, error) {
	s.logger.Info("GetCharge: appointment=%d", appointmentID)

	payment, err := s.payments.GetByAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetCharge: failed to get payment for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	lines, err := s.payments.GetLinesByAppointment(ctx, appointmentID)
	if err != nil {
		s.logger.Error("GetCharge: failed to get payment lines for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to get payment lines: %v", ErrInternal, err)
	}

	return &Charge{Payment: payment, Lines: lines}, nil
}

// DeleteCharge elimina el cobro de una cita y la devuelve a reservada.
// Borrado de líneas, borrado de cabecera y reversa de estado se aplican
// juntos o no se aplican.
func (s *Service) DeleteCharge(ctx context.Context, appointmentID int64) error {
	s.logger.Info("DeleteCharge: appointment=%d", appointmentID)

	if _, err := s.appointments.GetByID(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("DeleteCharge: failed to get appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if _, err := s.payments.GetByAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("DeleteCharge: appointment id=%d has no payment", appointmentID)
			return ErrPaymentNotFound
		}
		s.logger.Error("DeleteCharge: failed to check payment for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: failed to check payment: %v", ErrInternal, err)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.payments.DeleteByAppointment(txCtx, appointmentID); err != nil {
			return fmt.Errorf("%w: failed to delete payment: %v", ErrInternal, err)
		}
		if err := s.appointments.UpdateStatus(txCtx, appointmentID, domain.StatusReserved); err != nil {
			return fmt.Errorf("%w: failed to revert appointment status: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("DeleteCharge: transaction failed for appointment id=%d: %v", appointmentID, err)
		return err
	}

	s.logger.Info("DeleteCharge: payment removed for appointment id=%d, status reverted to %s",
		appointmentID, domain.StatusReserved)
	return nil
}
