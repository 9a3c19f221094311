package create_barber

import "context"

type CatalogService interface {
	CreateBarber(ctx context.Context, name string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
