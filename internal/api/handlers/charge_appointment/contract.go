package charge_appointment

import (
	"context"

	chargeAppointment "github.com/jpinedac/BRB-AgendaService/internal/usecase/charge_appointment"
)

type ChargeAppointmentUseCase interface {
	Execute(ctx context.Context, req *chargeAppointment.Request) (*chargeAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
