package billing

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// AppointmentRepository acceso a citas requerido por facturación
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// PaymentRepository acceso a pagos y sus líneas
type PaymentRepository interface {
	GetByAppointment(ctx context.Context, appointmentID int64) (*domain.Payment, error)
	GetLinesByAppointment(ctx context.Context, appointmentID int64) ([]*domain.PaymentServiceLine, error)
	DeleteByAppointment(ctx context.Context, appointmentID int64) error
}

// TransactionManager coordina operaciones que deben aplicarse juntas
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interfaz de logging del servicio
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
