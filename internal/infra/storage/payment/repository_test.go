package payment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	appointmentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/appointment"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
	"github.com/jpinedac/BRB-AgendaService/migrations"
	"github.com/jpinedac/BRB-AgendaService/pkg/ptr"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "."))

	return db
}

func seedAppointment(t *testing.T, db *sql.DB, barberID int64, start time.Time) *domain.Appointment {
	t.Helper()

	ap, err := appointmentRepo.NewRepository(db).Create(context.Background(), &domain.Appointment{
		BarberID:         barberID,
		PrimaryServiceID: ptr.Ptr(int64(1)),
		StartAt:          start,
		EndAt:            start.Add(40 * time.Minute),
		Status:           domain.StatusReserved,
		CreatedAt:        start.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	return ap
}

func seedCharge(t *testing.T, repo *Repository, appointmentID int64, paidAt time.Time) {
	t.Helper()

	_, err := repo.Create(context.Background(), &domain.Payment{
		AppointmentID: appointmentID,
		TotalAmount:   20000,
		BarberTotal:   10000,
		ShopTotal:     10000,
		PaymentMethod: "Efectivo",
		PaidAt:        paidAt,
	})
	require.NoError(t, err)

	// Servicio 1 del catálogo sembrado: Corte 20000 / 10000 / 10000
	require.NoError(t, repo.CreateLines(context.Background(), []domain.PaymentServiceLine{
		{
			AppointmentID:           appointmentID,
			ServiceID:               1,
			Qty:                     1,
			UnitPriceSnapshot:       20000,
			BarberEarningSnapshot:   10000,
			ShopLiquidationSnapshot: 10000,
		},
	}))
}

func TestLinesSurviveCatalogEdits(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	services := serviceRepo.NewRepository(db)

	paidAt := time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC)
	ap := seedAppointment(t, db, 1, paidAt.Add(-time.Hour))
	seedCharge(t, repo, ap.ID, paidAt)

	// Subimos el precio del servicio después del cobro
	svc, err := services.GetByID(context.Background(), 1)
	require.NoError(t, err)
	svc.Price = 25000
	svc.BarberEarning = 13000
	svc.ShopLiquidation = 12000
	require.NoError(t, services.Update(context.Background(), svc))

	lines, err := repo.GetLinesByAppointment(context.Background(), ap.ID)
	require.NoError(t, err)

	// Las líneas conservan los valores capturados al cobrar
	require.Len(t, lines, 1)
	assert.Equal(t, float64(20000), lines[0].UnitPriceSnapshot)
	assert.Equal(t, float64(10000), lines[0].BarberEarningSnapshot)
	assert.Equal(t, float64(10000), lines[0].ShopLiquidationSnapshot)
}

func TestListByRangeWithBarber(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	paidAt := time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC)
	ap := seedAppointment(t, db, 1, paidAt.Add(-time.Hour))
	seedCharge(t, repo, ap.ID, paidAt)

	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	records, err := repo.ListByRangeWithBarber(context.Background(), start, end, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ap.ID, records[0].AppointmentID)
	assert.Equal(t, "Esteban Fabra", records[0].BarberName)
	assert.Equal(t, float64(20000), records[0].TotalAmount)

	otherBarber, err := repo.ListByRangeWithBarber(context.Background(), start, end, ptr.Ptr(int64(2)))
	require.NoError(t, err)
	assert.Empty(t, otherBarber)
}

func TestListByRangeEndExclusive(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	inside := time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC)
	boundary := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	first := seedAppointment(t, db, 1, inside.Add(-time.Hour))
	seedCharge(t, repo, first.ID, inside)
	second := seedAppointment(t, db, 1, boundary)
	// Cobro estampado exactamente en el límite superior del rango
	seedCharge(t, repo, second.ID, boundary)

	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	records, err := repo.ListByRangeWithBarber(context.Background(), start, boundary, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, first.ID, records[0].AppointmentID)

	lineRecords, err := repo.ListLinesByRangeWithService(context.Background(), start, boundary, nil)
	require.NoError(t, err)
	require.Len(t, lineRecords, 1)
	assert.Equal(t, first.ID, lineRecords[0].AppointmentID)
}
