package reschedule_appointment

import (
	"context"
	"time"
)

type AgendaService interface {
	Reschedule(ctx context.Context, appointmentID int64, barberID int64, newStart time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
