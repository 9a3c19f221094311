package update_appointment_status

import "context"

type AgendaService interface {
	Cancel(ctx context.Context, appointmentID int64) error
	MarkNoShow(ctx context.Context, appointmentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
