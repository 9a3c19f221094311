package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	barberRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/barber"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
	"github.com/jpinedac/BRB-AgendaService/pkg/ptr"
)

type fakeBarbers struct {
	byID     map[int64]*domain.Barber
	daysOff  map[int64][]*domain.BarberDayOff
	nextID   int64
	updated  *domain.Barber
	removals int
}

func (f *fakeBarbers) List(_ context.Context, includeInactive bool) ([]*domain.Barber, error) {
	out := make([]*domain.Barber, 0, len(f.byID))
	for _, b := range f.byID {
		if b.Active || includeInactive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBarbers) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, barberRepo.ErrBarberNotFound
	}
	return b, nil
}

func (f *fakeBarbers) Create(_ context.Context, name string, active bool) (int64, error) {
	id := f.nextID
	f.byID[id] = &domain.Barber{ID: id, Name: name, Active: active}
	return id, nil
}

func (f *fakeBarbers) Update(_ context.Context, id int64, name string, active bool) error {
	f.updated = &domain.Barber{ID: id, Name: name, Active: active}
	return nil
}

func (f *fakeBarbers) ListDaysOff(_ context.Context, barberID int64) ([]*domain.BarberDayOff, error) {
	return f.daysOff[barberID], nil
}

func (f *fakeBarbers) AddDayOff(_ context.Context, barberID int64, date time.Time, note *string) error {
	f.daysOff[barberID] = append(f.daysOff[barberID], &domain.BarberDayOff{
		BarberID: barberID,
		Date:     date,
		Note:     note,
	})
	return nil
}

func (f *fakeBarbers) RemoveDayOff(_ context.Context, _ int64, _ time.Time) error {
	f.removals++
	return nil
}

type fakeServices struct {
	byID    map[int64]*domain.Service
	nextID  int64
	updated *domain.Service
}

func (f *fakeServices) List(_ context.Context, includeInactive bool) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(f.byID))
	for _, s := range f.byID {
		if s.Active || includeInactive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServices) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeServices) Create(_ context.Context, s *domain.Service) (int64, error) {
	id := f.nextID
	copied := *s
	copied.ID = id
	f.byID[id] = &copied
	return id, nil
}

func (f *fakeServices) Update(_ context.Context, s *domain.Service) error {
	f.updated = s
	return nil
}

type fakeAppointments struct {
	countByDate map[string]int
}

func (f *fakeAppointments) CountForBarberOnDate(_ context.Context, _ int64, date time.Time) (int, error) {
	return f.countByDate[date.Format(domain.DateFormat)], nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	service      *Service
	barbers      *fakeBarbers
	services     *fakeServices
	appointments *fakeAppointments
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		barbers: &fakeBarbers{
			byID:    map[int64]*domain.Barber{1: {ID: 1, Name: "Esteban Fabra", Active: true}},
			daysOff: make(map[int64][]*domain.BarberDayOff),
			nextID:  2,
		},
		services:     &fakeServices{byID: make(map[int64]*domain.Service), nextID: 10},
		appointments: &fakeAppointments{countByDate: make(map[string]int)},
	}
	env.service = NewService(env.barbers, env.services, env.appointments, noopLogger{})
	return env
}

func date(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateBarber(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.service.CreateBarber(context.Background(), "  Miguel Bedoya ")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	assert.Equal(t, "Miguel Bedoya", env.barbers.byID[2].Name)
	assert.True(t, env.barbers.byID[2].Active)
}

func TestCreateBarberEmptyName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.CreateBarber(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBarberDeactivate(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.UpdateBarber(context.Background(), 1, "Esteban Fabra", false)
	require.NoError(t, err)
	require.NotNil(t, env.barbers.updated)
	assert.False(t, env.barbers.updated.Active)
}

func TestUpdateBarberNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.UpdateBarber(context.Background(), 99, "Nadie", true)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestCreateService(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.service.CreateService(context.Background(), &domain.Service{
		Name:            "Corte",
		Price:           20000,
		BarberEarning:   10000,
		ShopLiquidation: 10000,
		DurationMin:     40,
		Active:          true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

// La partición no tiene que sumar el precio: es informativa
func TestCreateServiceSplitNotEnforced(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.CreateService(context.Background(), &domain.Service{
		Name:            "Promo",
		Price:           20000,
		BarberEarning:   15000,
		ShopLiquidation: 10000,
		DurationMin:     40,
		Active:          true,
	})
	assert.NoError(t, err)
}

func TestCreateServiceInvalid(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		svc  *domain.Service
	}{
		{name: "empty name", svc: &domain.Service{Name: " ", Price: 1000, DurationMin: 30}},
		{name: "negative price", svc: &domain.Service{Name: "Corte", Price: -1, DurationMin: 30}},
		{name: "zero duration", svc: &domain.Service{Name: "Corte", Price: 1000, DurationMin: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.CreateService(context.Background(), tt.svc)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateServiceNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.UpdateService(context.Background(), &domain.Service{
		ID:          99,
		Name:        "Corte",
		Price:       20000,
		DurationMin: 40,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAddDayOff(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.AddDayOff(context.Background(), 1, date(15), ptr.Ptr("viaje"))
	require.NoError(t, err)
	require.Len(t, env.barbers.daysOff[1], 1)
	assert.Equal(t, date(15), env.barbers.daysOff[1][0].Date)
}

// No se puede marcar libre un día con citas agendadas
func TestAddDayOffRefusedWithAppointments(t *testing.T) {
	env := newTestEnv(t)
	env.appointments.countByDate[date(15).Format(domain.DateFormat)] = 2

	err := env.service.AddDayOff(context.Background(), 1, date(15), nil)
	assert.ErrorIs(t, err, ErrDayOffHasAppointments)
	assert.Empty(t, env.barbers.daysOff[1])
}

func TestAddDayOffBarberNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.AddDayOff(context.Background(), 99, date(15), nil)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestRemoveDayOff(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.RemoveDayOff(context.Background(), 1, date(15))
	require.NoError(t, err)
	assert.Equal(t, 1, env.barbers.removals)
}
