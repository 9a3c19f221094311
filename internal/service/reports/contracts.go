package reports

import (
	"context"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// PaymentRepository consultas agregadas sobre cobros del rango
type PaymentRepository interface {
	ListByRangeWithBarber(ctx context.Context, start, end time.Time, barberID *int64) ([]*domain.PaymentRecord, error)
	ListLinesByRangeWithService(ctx context.Context, start, end time.Time, barberID *int64) ([]*domain.ServiceLineRecord, error)
}

// AppointmentRepository conteo de citas por estado en el rango
type AppointmentRepository interface {
	CountByStatusInRange(ctx context.Context, start, end time.Time, barberID *int64) (map[domain.AppointmentStatus]int, error)
}

// Logger interfaz de logging del servicio
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
