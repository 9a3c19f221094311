package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// Service servicio de reportes. Agrega cobros ya liquidados; nunca recalcula
// montos desde el catálogo, los snapshots de las líneas son la fuente.
type Service struct {
	payments     PaymentRepository
	appointments AppointmentRepository
	logger       Logger
}

// NewService crea el servicio de reportes
func NewService(payments PaymentRepository, appointments AppointmentRepository, logger Logger) *Service {
	return &Service{
		payments:     payments,
		appointments: appointments,
		logger:       logger,
	}
}

// Summarize construye el resumen de ventas de un rango de fechas, con filtro
// opcional por barbero. Dos pasadas sobre el mismo rango: cobros con barbero
// resuelto para los totales, líneas con servicio resuelto para las etiquetas.
func (s *Service) Summarize(ctx context.Context, from, to time.Time, barberID *int64) (*domain.ReportSummary, error) {
	s.logger.Info("Summarize: from=%s, to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if to.Before(from) {
		return nil, fmt.Errorf("%w: desde %s hasta %s", ErrInvalidRange,
			from.Format(domain.DisplayDateFormat), to.Format(domain.DisplayDateFormat))
	}

	records, err := s.payments.ListByRangeWithBarber(ctx, from, to, barberID)
	if err != nil {
		s.logger.Error("Summarize: failed to list payments: %v", err)
		return nil, fmt.Errorf("%w: failed to list payments: %v", ErrInternal, err)
	}

	lineRecords, err := s.payments.ListLinesByRangeWithService(ctx, from, to, barberID)
	if err != nil {
		s.logger.Error("Summarize: failed to list payment lines: %v", err)
		return nil, fmt.Errorf("%w: failed to list payment lines: %v", ErrInternal, err)
	}

	statusCounts, err := s.countStatuses(ctx, from, to, barberID)
	if err != nil {
		return nil, err
	}

	summary := &domain.ReportSummary{
		From:         from,
		To:           to,
		Payments:     make([]domain.PaymentRecord, 0, len(records)),
		StatusCounts: statusCounts,
	}

	perBarber := make(map[int64]*domain.BarberBreakdown)
	perDay := make(map[string]*domain.ReportTotals)

	for _, rec := range records {
		summary.Payments = append(summary.Payments, *rec)

		summary.Totals.Sales += rec.TotalAmount
		summary.Totals.BarberShare += rec.BarberTotal
		summary.Totals.ShopShare += rec.ShopTotal

		bb, ok := perBarber[rec.BarberID]
		if !ok {
			bb = &domain.BarberBreakdown{BarberID: rec.BarberID, BarberName: rec.BarberName}
			perBarber[rec.BarberID] = bb
		}
		bb.Totals.Sales += rec.TotalAmount
		bb.Totals.BarberShare += rec.BarberTotal
		bb.Totals.ShopShare += rec.ShopTotal

		day := rec.PaidAt.Format(domain.DateFormat)
		dt, ok := perDay[day]
		if !ok {
			dt = &domain.ReportTotals{}
			perDay[day] = dt
		}
		dt.Sales += rec.TotalAmount
		dt.BarberShare += rec.BarberTotal
		dt.ShopShare += rec.ShopTotal
	}

	attachServiceLabels(perBarber, lineRecords)

	summary.PerBarber = sortBarbers(perBarber)
	summary.PerDay = sortDays(perDay)

	s.logger.Info("Summarize: %d payments, %.0f in sales", len(summary.Payments), summary.Totals.Sales)
	return summary, nil
}

// countStatuses devuelve el conteo de citas por estado, con los cuatro
// estados siempre presentes aunque valgan cero
func (s *Service) countStatuses(ctx context.Context, from, to time.Time, barberID *int64) (map[domain.AppointmentStatus]int, error) {
	counts := make(map[domain.AppointmentStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}

	found, err := s.appointments.CountByStatusInRange(ctx, from, to, barberID)
	if err != nil {
		s.logger.Error("Summarize: failed to count appointments by status: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments by status: %v", ErrInternal, err)
	}
	for status, count := range found {
		counts[status] = count
	}

	return counts, nil
}

// attachServiceLabels agrega a cada barbero las etiquetas legibles de lo que
// cobró en el rango ("Corte x2"), acumulando cantidades por servicio
func attachServiceLabels(perBarber map[int64]*domain.BarberBreakdown, lines []*domain.ServiceLineRecord) {
	type serviceKey struct {
		barberID  int64
		serviceID int64
	}

	qtyByService := make(map[serviceKey]int)
	nameByService := make(map[serviceKey]string)
	order := make([]serviceKey, 0)

	for _, line := range lines {
		key := serviceKey{barberID: line.BarberID, serviceID: line.ServiceID}
		if _, ok := qtyByService[key]; !ok {
			order = append(order, key)
			nameByService[key] = line.ServiceName
		}
		qtyByService[key] += line.Qty
	}

	for _, key := range order {
		bb, ok := perBarber[key.barberID]
		if !ok {
			continue
		}
		bb.ServiceLines = append(bb.ServiceLines,
			fmt.Sprintf("%s x%d", nameByService[key], qtyByService[key]))
	}
}

func sortBarbers(perBarber map[int64]*domain.BarberBreakdown) []domain.BarberBreakdown {
	out := make([]domain.BarberBreakdown, 0, len(perBarber))
	for _, bb := range perBarber {
		out = append(out, *bb)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BarberName != out[j].BarberName {
			return out[i].BarberName < out[j].BarberName
		}
		return out[i].BarberID < out[j].BarberID
	})
	return out
}

func sortDays(perDay map[string]*domain.ReportTotals) []domain.DayBreakdown {
	out := make([]domain.DayBreakdown, 0, len(perDay))
	for day, totals := range perDay {
		out = append(out, domain.DayBreakdown{Day: day, Totals: *totals})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
