package charge_appointment

import (
	"context"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// AppointmentRepository interfaz del repositorio de citas
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// ServiceRepository interfaz del catálogo de servicios. La resolución usa
// GetByID (no GetActiveByID): un servicio ya desactivado que se prestó
// sigue siendo cobrable.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// PaymentRepository interfaz del repositorio de cobros
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (int64, error)
	CreateLines(ctx context.Context, lines []domain.PaymentServiceLine) error
	GetByAppointment(ctx context.Context, appointmentID int64) (*domain.Payment, error)
}

// TransactionManager interfaz para el manejo de transacciones
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interfaz para obtener la hora actual (facilita las pruebas)
type TimeProvider interface {
	Now() time.Time
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider proveedor de tiempo real para producción
type RealTimeProvider struct{}

// Now devuelve la hora actual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
