package agenda

import (
	"context"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// AppointmentRepository interfaz del repositorio de citas
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, ap *domain.Appointment) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
	HasOverlap(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (bool, error)
	ListByRange(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// ServiceRepository interfaz del catálogo de servicios
type ServiceRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Service, error)
}

// BarberRepository interfaz del repositorio de barberos
type BarberRepository interface {
	IsOff(ctx context.Context, barberID int64, date time.Time) (bool, error)
}

// PaymentRepository interfaz del repositorio de cobros
type PaymentRepository interface {
	GetByAppointment(ctx context.Context, appointmentID int64) (*domain.Payment, error)
}

// Logger interfaz de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
