package charge_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	appointmentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/appointment"
	paymentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/payment"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
)

// UseCase use case de cobro de citas. Calcula los totales desde el catálogo
// vigente, persiste las líneas snapshot y marca la cita como atendida, todo
// dentro de una sola transacción: un cobro a medias (cabecera sin líneas, o
// estado sin actualizar) es una violación de consistencia.
type UseCase struct {
	appointments AppointmentRepository
	services     ServiceRepository
	payments     PaymentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea el use case de cobro
func NewUseCase(
	appointments AppointmentRepository,
	services ServiceRepository,
	payments PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		services:     services,
		payments:     payments,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute cobra una cita y devuelve los totales calculados
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChargeAppointment: appointment=%d, lines=%d, method=%s",
		req.AppointmentID, len(req.Items), req.PaymentMethod)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ChargeAppointment: validation failed: %v", err)
		return nil, err
	}

	// La cita debe existir
	if _, err := uc.appointments.GetByID(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("ChargeAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("ChargeAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// A lo sumo un cobro por cita
	if _, err := uc.payments.GetByAppointment(ctx, req.AppointmentID); err == nil {
		uc.logger.Warn("ChargeAppointment: appointment id=%d already charged", req.AppointmentID)
		return nil, ErrAlreadyCharged
	} else if !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		uc.logger.Error("ChargeAppointment: failed to check payment for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to check existing payment: %v", ErrInternal, err)
	}

	// Resolución de servicios y snapshot de su economía al momento del
	// cobro. Los servicios desactivados siguen siendo cobrables.
	totals := domain.ChargeTotals{}
	lines := make([]domain.PaymentServiceLine, 0, len(req.Items))
	for _, item := range req.Items {
		svc, err := uc.services.GetByID(ctx, item.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("ChargeAppointment: service id=%d not found", item.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("ChargeAppointment: failed to get service id=%d: %v", item.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		qty := float64(item.Qty)
		totals.Total += svc.Price * qty
		totals.BarberTotal += svc.BarberEarning * qty
		totals.ShopTotal += svc.ShopLiquidation * qty

		lines = append(lines, domain.PaymentServiceLine{
			AppointmentID:           req.AppointmentID,
			ServiceID:               item.ServiceID,
			Qty:                     item.Qty,
			UnitPriceSnapshot:       svc.Price,
			BarberEarningSnapshot:   svc.BarberEarning,
			ShopLiquidationSnapshot: svc.ShopLiquidation,
		})
	}

	payment := &domain.Payment{
		AppointmentID: req.AppointmentID,
		TotalAmount:   totals.Total,
		BarberTotal:   totals.BarberTotal,
		ShopTotal:     totals.ShopTotal,
		PaymentMethod: req.PaymentMethod,
		PaidAt:        uc.timeProvider.Now(),
	}

	var paymentID int64

	// Cabecera, líneas y cambio de estado se aplican juntos o no se aplican
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		id, err := uc.payments.Create(txCtx, payment)
		if err != nil {
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}
		paymentID = id

		if err := uc.payments.CreateLines(txCtx, lines); err != nil {
			return fmt.Errorf("%w: failed to create payment lines: %v", ErrInternal, err)
		}

		if err := uc.appointments.UpdateStatus(txCtx, req.AppointmentID, domain.StatusServiced); err != nil {
			return fmt.Errorf("%w: failed to mark appointment as serviced: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("ChargeAppointment: transaction failed for appointment id=%d: %v", req.AppointmentID, err)
		return nil, err
	}

	uc.logger.Info("ChargeAppointment: payment id=%d created for appointment id=%d, total=%.0f",
		paymentID, req.AppointmentID, totals.Total)

	return &Response{
		PaymentID:   paymentID,
		Total:       totals.Total,
		BarberTotal: totals.BarberTotal,
		ShopTotal:   totals.ShopTotal,
	}, nil
}

func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one service line is required", ErrInvalidInput)
	}
	for _, item := range req.Items {
		if item.ServiceID <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if item.Qty <= 0 {
			return fmt.Errorf("%w: qty must be positive", ErrInvalidInput)
		}
	}
	// El método de pago es texto libre: cualquier cadena se acepta tal cual,
	// incluida la vacía
	return nil
}
