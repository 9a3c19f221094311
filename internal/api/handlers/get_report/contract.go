package get_report

import (
	"context"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

type ReportService interface {
	Summarize(ctx context.Context, from, to time.Time, barberID *int64) (*domain.ReportSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
