package list_days_off

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

type CatalogService interface {
	ListDaysOff(ctx context.Context, barberID int64) ([]*domain.BarberDayOff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
