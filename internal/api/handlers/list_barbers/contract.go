package list_barbers

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

type CatalogService interface {
	ListBarbers(ctx context.Context, includeInactive bool) ([]*domain.Barber, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
