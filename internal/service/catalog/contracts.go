package catalog

import (
	"context"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// BarberRepository acceso a barberos y sus días libres
type BarberRepository interface {
	List(ctx context.Context, includeInactive bool) ([]*domain.Barber, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	Create(ctx context.Context, name string, active bool) (int64, error)
	Update(ctx context.Context, id int64, name string, active bool) error
	ListDaysOff(ctx context.Context, barberID int64) ([]*domain.BarberDayOff, error)
	AddDayOff(ctx context.Context, barberID int64, date time.Time, note *string) error
	RemoveDayOff(ctx context.Context, barberID int64, date time.Time) error
}

// ServiceRepository acceso al catálogo de servicios
type ServiceRepository interface {
	List(ctx context.Context, includeInactive bool) ([]*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) (int64, error)
	Update(ctx context.Context, s *domain.Service) error
}

// AppointmentRepository conteo de citas usado para proteger los días libres
type AppointmentRepository interface {
	CountForBarberOnDate(ctx context.Context, barberID int64, date time.Time) (int, error)
}

// Logger interfaz de logging del servicio
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
