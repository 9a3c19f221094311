package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

type fakePayments struct {
	records []*domain.PaymentRecord
	lines   []*domain.ServiceLineRecord
}

func (f *fakePayments) ListByRangeWithBarber(_ context.Context, _, _ time.Time, _ *int64) ([]*domain.PaymentRecord, error) {
	return f.records, nil
}

func (f *fakePayments) ListLinesByRangeWithService(_ context.Context, _, _ time.Time, _ *int64) ([]*domain.ServiceLineRecord, error) {
	return f.lines, nil
}

type fakeAppointments struct {
	counts map[domain.AppointmentStatus]int
}

func (f *fakeAppointments) CountByStatusInRange(_ context.Context, _, _ time.Time, _ *int64) (map[domain.AppointmentStatus]int, error) {
	return f.counts, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func day(d int, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func newService(payments *fakePayments, appointments *fakeAppointments) *Service {
	return NewService(payments, appointments, noopLogger{})
}

func TestSummarize(t *testing.T) {
	payments := &fakePayments{
		records: []*domain.PaymentRecord{
			{PaymentID: 1, AppointmentID: 1, BarberID: 1, BarberName: "Esteban Fabra", TotalAmount: 32000, BarberTotal: 16000, ShopTotal: 16000, PaidAt: day(10, 11)},
			{PaymentID: 2, AppointmentID: 2, BarberID: 2, BarberName: "Miguel Giraldo", TotalAmount: 20000, BarberTotal: 10000, ShopTotal: 10000, PaidAt: day(10, 15)},
			{PaymentID: 3, AppointmentID: 3, BarberID: 1, BarberName: "Esteban Fabra", TotalAmount: 20000, BarberTotal: 10000, ShopTotal: 10000, PaidAt: day(11, 10)},
		},
		lines: []*domain.ServiceLineRecord{
			{AppointmentID: 1, BarberID: 1, ServiceID: 10, ServiceName: "Corte", Qty: 1, LineTotal: 20000},
			{AppointmentID: 1, BarberID: 1, ServiceID: 11, ServiceName: "Barba", Qty: 1, LineTotal: 12000},
			{AppointmentID: 2, BarberID: 2, ServiceID: 10, ServiceName: "Corte", Qty: 1, LineTotal: 20000},
			{AppointmentID: 3, BarberID: 1, ServiceID: 10, ServiceName: "Corte", Qty: 1, LineTotal: 20000},
		},
	}
	appointments := &fakeAppointments{counts: map[domain.AppointmentStatus]int{
		domain.StatusServiced: 3,
		domain.StatusReserved: 2,
	}}

	summary, err := newService(payments, appointments).Summarize(
		context.Background(), day(10, 0), day(12, 0), nil)
	require.NoError(t, err)

	assert.Equal(t, float64(72000), summary.Totals.Sales)
	assert.Equal(t, float64(36000), summary.Totals.BarberShare)
	assert.Equal(t, float64(36000), summary.Totals.ShopShare)
	assert.Len(t, summary.Payments, 3)

	// Desglose por barbero ordenado por nombre, con cantidades acumuladas
	require.Len(t, summary.PerBarber, 2)
	esteban := summary.PerBarber[0]
	assert.Equal(t, "Esteban Fabra", esteban.BarberName)
	assert.Equal(t, float64(52000), esteban.Totals.Sales)
	assert.Equal(t, []string{"Corte x2", "Barba x1"}, esteban.ServiceLines)

	miguel := summary.PerBarber[1]
	assert.Equal(t, "Miguel Giraldo", miguel.BarberName)
	assert.Equal(t, []string{"Corte x1"}, miguel.ServiceLines)

	// Desglose por día en orden calendario
	require.Len(t, summary.PerDay, 2)
	assert.Equal(t, "2026-03-10", summary.PerDay[0].Day)
	assert.Equal(t, float64(52000), summary.PerDay[0].Totals.Sales)
	assert.Equal(t, "2026-03-11", summary.PerDay[1].Day)
	assert.Equal(t, float64(20000), summary.PerDay[1].Totals.Sales)
}

// Los cuatro estados aparecen siempre, aunque el rango no tenga citas
func TestSummarizeStatusCountsAlwaysComplete(t *testing.T) {
	payments := &fakePayments{}
	appointments := &fakeAppointments{counts: map[domain.AppointmentStatus]int{
		domain.StatusCancelled: 1,
	}}

	summary, err := newService(payments, appointments).Summarize(
		context.Background(), day(10, 0), day(12, 0), nil)
	require.NoError(t, err)

	assert.Len(t, summary.StatusCounts, len(domain.AllStatuses))
	assert.Equal(t, 1, summary.StatusCounts[domain.StatusCancelled])
	assert.Equal(t, 0, summary.StatusCounts[domain.StatusReserved])
	assert.Equal(t, 0, summary.StatusCounts[domain.StatusServiced])
	assert.Equal(t, 0, summary.StatusCounts[domain.StatusNoShow])
}

func TestSummarizeEmptyRange(t *testing.T) {
	summary, err := newService(&fakePayments{}, &fakeAppointments{}).Summarize(
		context.Background(), day(10, 0), day(12, 0), nil)
	require.NoError(t, err)

	assert.Zero(t, summary.Totals.Sales)
	assert.Empty(t, summary.Payments)
	assert.Empty(t, summary.PerBarber)
	assert.Empty(t, summary.PerDay)
}

func TestSummarizeInvalidRange(t *testing.T) {
	_, err := newService(&fakePayments{}, &fakeAppointments{}).Summarize(
		context.Background(), day(12, 0), day(10, 0), nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
