package update_service

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

type CatalogService interface {
	UpdateService(ctx context.Context, svc *domain.Service) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
