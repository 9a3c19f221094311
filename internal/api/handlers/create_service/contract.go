package create_service

import (
	"context"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

type CatalogService interface {
	CreateService(ctx context.Context, svc *domain.Service) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
