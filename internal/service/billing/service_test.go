package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	appointmentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/appointment"
	paymentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/payment"
)

type fakeAppointments struct {
	byID     map[int64]*domain.Appointment
	statuses map[int64]domain.AppointmentStatus
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	ap, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return ap, nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.statuses[id] = status
	return nil
}

type fakePayments struct {
	byAppointment map[int64]*domain.Payment
	lines         map[int64][]*domain.PaymentServiceLine
	deleted       []int64
}

func (f *fakePayments) GetByAppointment(_ context.Context, appointmentID int64) (*domain.Payment, error) {
	p, ok := f.byAppointment[appointmentID]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePayments) GetLinesByAppointment(_ context.Context, appointmentID int64) ([]*domain.PaymentServiceLine, error) {
	return f.lines[appointmentID], nil
}

func (f *fakePayments) DeleteByAppointment(_ context.Context, appointmentID int64) error {
	if _, ok := f.byAppointment[appointmentID]; !ok {
		return paymentRepo.ErrPaymentNotFound
	}
	delete(f.byAppointment, appointmentID)
	delete(f.lines, appointmentID)
	f.deleted = append(f.deleted, appointmentID)
	return nil
}

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	service      *Service
	appointments *fakeAppointments
	payments     *fakePayments
	tx           *fakeTxManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		appointments: &fakeAppointments{
			byID: map[int64]*domain.Appointment{
				1: {ID: 1, BarberID: 1, Status: domain.StatusServiced},
			},
			statuses: make(map[int64]domain.AppointmentStatus),
		},
		payments: &fakePayments{
			byAppointment: make(map[int64]*domain.Payment),
			lines:         make(map[int64][]*domain.PaymentServiceLine),
		},
		tx: &fakeTxManager{},
	}
	env.service = NewService(env.appointments, env.payments, env.tx, noopLogger{})
	return env
}

func seedCharge(env *testEnv, appointmentID int64) {
	env.payments.byAppointment[appointmentID] = &domain.Payment{
		ID:            5,
		AppointmentID: appointmentID,
		TotalAmount:   32000,
	}
	env.payments.lines[appointmentID] = []*domain.PaymentServiceLine{
		{ID: 1, AppointmentID: appointmentID, ServiceID: 10, Qty: 1, UnitPriceSnapshot: 20000},
		{ID: 2, AppointmentID: appointmentID, ServiceID: 11, Qty: 1, UnitPriceSnapshot: 12000},
	}
}

func TestGetCharge(t *testing.T) {
	env := newTestEnv(t)
	seedCharge(env, 1)

	charge, err := env.service.GetCharge(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, float64(32000), charge.Payment.TotalAmount)
	assert.Len(t, charge.Lines, 2)
}

func TestGetChargeNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.GetCharge(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestDeleteCharge(t *testing.T) {
	env := newTestEnv(t)
	seedCharge(env, 1)

	err := env.service.DeleteCharge(context.Background(), 1)
	require.NoError(t, err)

	// El cobro desaparece y la cita vuelve a RESERVADA, en una transacción
	assert.Equal(t, []int64{1}, env.payments.deleted)
	assert.Equal(t, domain.StatusReserved, env.appointments.statuses[1])
	assert.Equal(t, 1, env.tx.calls)
}

func TestDeleteChargeNoPayment(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.DeleteCharge(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
	assert.Zero(t, env.tx.calls)
}

func TestDeleteChargeAppointmentNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.DeleteCharge(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
