package create_appointment

import (
	"context"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// AppointmentRepository interfaz del repositorio de citas
type AppointmentRepository interface {
	Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error)
	HasOverlap(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (bool, error)
}

// ServiceRepository interfaz del catálogo de servicios
type ServiceRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Service, error)
}

// BarberRepository interfaz del repositorio de barberos
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	IsOff(ctx context.Context, barberID int64, date time.Time) (bool, error)
}

// ClientRepository interfaz del repositorio de clientes
type ClientRepository interface {
	FindByNameAndPhone(ctx context.Context, name string, phone *string) (*domain.Client, error)
	Create(ctx context.Context, name string, phone *string) (int64, error)
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
