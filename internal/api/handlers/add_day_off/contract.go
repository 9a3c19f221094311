package add_day_off

import (
	"context"
	"time"
)

type CatalogService interface {
	AddDayOff(ctx context.Context, barberID int64, date time.Time, note *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
