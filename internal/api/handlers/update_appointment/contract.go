package update_appointment

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/service/agenda"
)

type AgendaService interface {
	Update(ctx context.Context, appointmentID int64, req agenda.UpdateRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
