package get_charge

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/service/billing"
)

type BillingService interface {
	GetCharge(ctx context.Context, appointmentID int64) (*billing.Charge, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
