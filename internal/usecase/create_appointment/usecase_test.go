package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	barberRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/barber"
	clientRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/client"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
	"github.com/jpinedac/BRB-AgendaService/pkg/ptr"
)

type fakeAppointments struct {
	overlap bool
	created *domain.Appointment
	nextID  int64
}

func (f *fakeAppointments) Create(_ context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	copied := *ap
	copied.ID = f.nextID
	f.created = &copied
	return &copied, nil
}

func (f *fakeAppointments) HasOverlap(_ context.Context, _ int64, _, _ time.Time, _ *int64) (bool, error) {
	return f.overlap, nil
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
	byID     map[int64]*domain.Barber
	offDates map[string]bool
}

func (f *fakeBarbers) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, barberRepo.ErrBarberNotFound
	}
	return b, nil
}

func (f *fakeBarbers) IsOff(_ context.Context, _ int64, date time.Time) (bool, error) {
	return f.offDates[date.Format(domain.DateFormat)], nil
}

type clientKey struct {
	name  string
	phone string
}

type fakeClients struct {
	existing map[clientKey]*domain.Client
	created  []clientKey
	nextID   int64
}

func key(name string, phone *string) clientKey {
	k := clientKey{name: name}
	if phone != nil {
		k.phone = *phone
	} else {
		k.phone = "\x00nil"
	}
	return k
}

func (f *fakeClients) FindByNameAndPhone(_ context.Context, name string, phone *string) (*domain.Client, error) {
	c, ok := f.existing[key(name, phone)]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClients) Create(_ context.Context, name string, phone *string) (int64, error) {
	f.created = append(f.created, key(name, phone))
	return f.nextID, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	uc           *UseCase
	appointments *fakeAppointments
	services     *fakeServices
	barbers      *fakeBarbers
	clients      *fakeClients
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hours, err := domain.ParseBusinessHours(domain.DefaultOpeningTime, domain.DefaultClosingTime)
	require.NoError(t, err)

	env := &testEnv{
		appointments: &fakeAppointments{nextID: 1},
		services:     &fakeServices{active: make(map[int64]*domain.Service)},
		barbers: &fakeBarbers{
			byID:     map[int64]*domain.Barber{1: {ID: 1, Name: "Esteban Fabra", Active: true}},
			offDates: make(map[string]bool),
		},
		clients: &fakeClients{existing: make(map[clientKey]*domain.Client), nextID: 50},
	}
	env.services.active[10] = &domain.Service{ID: 10, Name: "Corte", Price: 20000, DurationMin: 40, Active: true}

	env.uc = NewUseCase(env.appointments, env.services, env.barbers, env.clients, hours, noopLogger{})
	env.uc.timeProvider = &fixedTime{now: time.Date(2026, time.March, 9, 18, 0, 0, 0, time.UTC)}
	return env
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestExecute(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  1,
		ServiceID: 10,
		StartAt:   at(10, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, at(10, 0), resp.StartAt)
	assert.Equal(t, at(10, 40), resp.EndAt)
	assert.Equal(t, string(domain.StatusReserved), resp.Status)
	assert.Nil(t, resp.ClientID)
	assert.Equal(t, time.Date(2026, time.March, 9, 18, 0, 0, 0, time.UTC), resp.CreatedAt)
}

func TestExecuteCreatesClient(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Execute(context.Background(), &Request{
		BarberID:    1,
		ServiceID:   10,
		ClientName:  ptr.Ptr("  Laura Pérez  "),
		ClientPhone: ptr.Ptr("3001234567"),
		StartAt:     at(10, 0),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClientID)
	assert.Equal(t, int64(50), *resp.ClientID)
	// El nombre se registra sin espacios sobrantes
	require.Len(t, env.clients.created, 1)
	assert.Equal(t, "Laura Pérez", env.clients.created[0].name)
}

func TestExecuteReusesExistingClient(t *testing.T) {
	env := newTestEnv(t)
	phone := ptr.Ptr("3001234567")
	env.clients.existing[key("Laura Pérez", phone)] = &domain.Client{ID: 7, Name: "Laura Pérez", Phone: phone}

	resp, err := env.uc.Execute(context.Background(), &Request{
		BarberID:    1,
		ServiceID:   10,
		ClientName:  ptr.Ptr("Laura Pérez"),
		ClientPhone: phone,
		StartAt:     at(10, 0),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClientID)
	assert.Equal(t, int64(7), *resp.ClientID)
	assert.Empty(t, env.clients.created)
}

func TestExecuteNilPhoneDoesNotMatchStoredPhone(t *testing.T) {
	env := newTestEnv(t)
	phone := ptr.Ptr("3001234567")
	env.clients.existing[key("Laura Pérez", phone)] = &domain.Client{ID: 7, Name: "Laura Pérez", Phone: phone}

	// Mismo nombre sin teléfono: es otro registro
	resp, err := env.uc.Execute(context.Background(), &Request{
		BarberID:   1,
		ServiceID:  10,
		ClientName: ptr.Ptr("Laura Pérez"),
		StartAt:    at(10, 0),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClientID)
	assert.Equal(t, int64(50), *resp.ClientID)
}

func TestExecuteServiceNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  1,
		ServiceID: 99,
		StartAt:   at(10, 0),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteBarberInactive(t *testing.T) {
	env := newTestEnv(t)
	env.barbers.byID[2] = &domain.Barber{ID: 2, Name: "Miguel Giraldo", Active: false}

	_, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  2,
		ServiceID: 10,
		StartAt:   at(10, 0),
	})
	assert.ErrorIs(t, err, ErrBarberInactive)
}

func TestExecuteBarberUnknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  99,
		ServiceID: 10,
		StartAt:   at(10, 0),
	})
	assert.ErrorIs(t, err, ErrBarberInactive)
}

func TestExecuteBarberDayOff(t *testing.T) {
	env := newTestEnv(t)
	env.barbers.offDates[at(10, 0).Format(domain.DateFormat)] = true

	_, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  1,
		ServiceID: 10,
		StartAt:   at(10, 0),
	})
	assert.ErrorIs(t, err, ErrBarberDayOff)
}

func TestExecuteOutsideBusinessHours(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		start time.Time
	}{
		{name: "before opening", start: at(9, 0)},
		{name: "ends after closing", start: at(19, 30)},
		{name: "starts at closing", start: at(20, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.uc.Execute(context.Background(), &Request{
				BarberID:  1,
				ServiceID: 10,
				StartAt:   tt.start,
			})
			assert.ErrorIs(t, err, ErrOutsideBusinessHours)
		})
	}
}

func TestExecuteScheduleConflict(t *testing.T) {
	env := newTestEnv(t)
	env.appointments.overlap = true

	_, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  1,
		ServiceID: 10,
		StartAt:   at(10, 0),
	})
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestExecuteInvalidInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  0,
		ServiceID: 10,
		StartAt:   at(10, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// El orden de validación es fijo: con servicio inexistente Y barbero
// inactivo, gana el error del servicio.
func TestExecuteValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	env.barbers.byID[2] = &domain.Barber{ID: 2, Name: "Miguel Giraldo", Active: false}

	_, err := env.uc.Execute(context.Background(), &Request{
		BarberID:  2,
		ServiceID: 99,
		StartAt:   at(10, 0),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
