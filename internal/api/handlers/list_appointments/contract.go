package list_appointments

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

type AgendaService interface {
	ListByRange(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
