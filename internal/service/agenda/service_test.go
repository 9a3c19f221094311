package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	appointmentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/appointment"
	paymentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/payment"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
	"github.com/jpinedac/BRB-AgendaService/pkg/ptr"
)

type fakeAppointments struct {
	byID        map[int64]*domain.Appointment
	overlap     bool
	lastExclude *int64
	updated     *domain.Appointment
	statuses    map[int64]domain.AppointmentStatus
	deleted     []int64
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{
		byID:     make(map[int64]*domain.Appointment),
		statuses: make(map[int64]domain.AppointmentStatus),
	}
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	ap, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeAppointments) Update(_ context.Context, ap *domain.Appointment) error {
	f.updated = ap
	return nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeAppointments) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAppointments) HasOverlap(_ context.Context, _ int64, _, _ time.Time, excludeID *int64) (bool, error) {
	f.lastExclude = excludeID
	return f.overlap, nil
}

func (f *fakeAppointments) ListByRange(_ context.Context, _ domain.AppointmentFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(f.byID))
	for _, ap := range f.byID {
		out = append(out, ap)
	}
	return out, nil
}

type fakeServices struct {
	active map[int64]*domain.Service
}

func (f *fakeServices) GetActiveByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.active[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeBarbers struct {
	offDates map[string]bool
}

func (f *fakeBarbers) IsOff(_ context.Context, _ int64, date time.Time) (bool, error) {
	return f.offDates[date.Format(domain.DateFormat)], nil
}

type fakePayments struct {
	byAppointment map[int64]*domain.Payment
}

func (f *fakePayments) GetByAppointment(_ context.Context, appointmentID int64) (*domain.Payment, error) {
	p, ok := f.byAppointment[appointmentID]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return p, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	service      *Service
	appointments *fakeAppointments
	services     *fakeServices
	barbers      *fakeBarbers
	payments     *fakePayments
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hours, err := domain.ParseBusinessHours(domain.DefaultOpeningTime, domain.DefaultClosingTime)
	require.NoError(t, err)

	env := &testEnv{
		appointments: newFakeAppointments(),
		services:     &fakeServices{active: make(map[int64]*domain.Service)},
		barbers:      &fakeBarbers{offDates: make(map[string]bool)},
		payments:     &fakePayments{byAppointment: make(map[int64]*domain.Payment)},
	}
	env.service = NewService(env.appointments, env.services, env.barbers, env.payments, hours, domain.MinIntervalMinutes, noopLogger{})
	return env
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func seedAppointment(env *testEnv, id int64) *domain.Appointment {
	ap := &domain.Appointment{
		ID:               id,
		BarberID:         1,
		PrimaryServiceID: ptr.Ptr(int64(10)),
		StartAt:          at(10, 0),
		EndAt:            at(10, 40),
		Status:           domain.StatusReserved,
	}
	env.appointments.byID[id] = ap
	return ap
}

func seedService(env *testEnv, id int64, durationMin int) {
	env.services.active[id] = &domain.Service{
		ID:          id,
		Name:        "Corte",
		Price:       20000,
		DurationMin: durationMin,
		Active:      true,
	}
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)
	seedService(env, 10, 40)

	err := env.service.Update(context.Background(), 1, UpdateRequest{
		BarberID:  2,
		StartAt:   at(14, 0),
		ServiceID: 10,
		Notes:     ptr.Ptr("cliente frecuente"),
	})
	require.NoError(t, err)

	require.NotNil(t, env.appointments.updated)
	assert.Equal(t, int64(2), env.appointments.updated.BarberID)
	assert.Equal(t, at(14, 0), env.appointments.updated.StartAt)
	assert.Equal(t, at(14, 40), env.appointments.updated.EndAt)
	assert.Equal(t, domain.StatusReserved, env.appointments.updated.Status)

	// El choque se verifica excluyendo la propia cita
	require.NotNil(t, env.appointments.lastExclude)
	assert.Equal(t, int64(1), *env.appointments.lastExclude)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedService(env, 10, 40)

	err := env.service.Update(context.Background(), 99, UpdateRequest{
		BarberID:  1,
		StartAt:   at(14, 0),
		ServiceID: 10,
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateServiceNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)

	err := env.service.Update(context.Background(), 1, UpdateRequest{
		BarberID:  1,
		StartAt:   at(14, 0),
		ServiceID: 77,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateBarberDayOff(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)
	seedService(env, 10, 40)
	env.barbers.offDates[at(14, 0).Format(domain.DateFormat)] = true

	err := env.service.Update(context.Background(), 1, UpdateRequest{
		BarberID:  1,
		StartAt:   at(14, 0),
		ServiceID: 10,
	})
	assert.ErrorIs(t, err, ErrBarberDayOff)
}

func TestUpdateOutsideBusinessHours(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)
	seedService(env, 10, 40)

	// 19:50 + 40min termina después del cierre de las 20:00
	err := env.service.Update(context.Background(), 1, UpdateRequest{
		BarberID:  1,
		StartAt:   at(19, 50),
		ServiceID: 10,
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestUpdateScheduleConflict(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)
	seedService(env, 10, 40)
	env.appointments.overlap = true

	err := env.service.Update(context.Background(), 1, UpdateRequest{
		BarberID:  1,
		StartAt:   at(14, 0),
		ServiceID: 10,
	})
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestRescheduleUsesServiceDuration(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)
	seedService(env, 10, 40)

	err := env.service.Reschedule(context.Background(), 1, 1, at(16, 0))
	require.NoError(t, err)

	require.NotNil(t, env.appointments.updated)
	assert.Equal(t, at(16, 0), env.appointments.updated.StartAt)
	assert.Equal(t, at(16, 40), env.appointments.updated.EndAt)
}

func TestRescheduleFallbackWhenServiceGone(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)
	// El servicio 10 ya no está en el catálogo activo

	err := env.service.Reschedule(context.Background(), 1, 1, at(16, 0))
	require.NoError(t, err)

	require.NotNil(t, env.appointments.updated)
	assert.Equal(t, at(16, 0), env.appointments.updated.StartAt)
	assert.Equal(t, at(16, domain.MinIntervalMinutes), env.appointments.updated.EndAt)
}

func TestRescheduleFallbackUsesConfiguredInterval(t *testing.T) {
	env := newTestEnv(t)
	env.service.minInterval = 30
	seedAppointment(env, 1)
	// Sin servicio en el catálogo la duración degradada sale de la
	// configuración, no de la constante
	err := env.service.Reschedule(context.Background(), 1, 1, at(16, 0))
	require.NoError(t, err)

	require.NotNil(t, env.appointments.updated)
	assert.Equal(t, at(16, 30), env.appointments.updated.EndAt)
}

func TestCancelIsUnconditional(t *testing.T) {
	env := newTestEnv(t)
	ap := seedAppointment(env, 1)
	ap.Status = domain.StatusServiced

	// Cancelar una cita ya atendida se permite
	err := env.service.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, env.appointments.statuses[1])
}

func TestMarkNoShow(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)

	err := env.service.MarkNoShow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, env.appointments.statuses[1])
}

func TestCancelNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)

	err := env.service.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, env.appointments.deleted)
}

func TestDeleteRefusedWhenCharged(t *testing.T) {
	env := newTestEnv(t)
	seedAppointment(env, 1)
	env.payments.byAppointment[1] = &domain.Payment{ID: 5, AppointmentID: 1}

	err := env.service.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPaymentExists)
	assert.Empty(t, env.appointments.deleted)
}

func TestDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
