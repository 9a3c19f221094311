package update_barber

import "context"

type CatalogService interface {
	UpdateBarber(ctx context.Context, id int64, name string, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
