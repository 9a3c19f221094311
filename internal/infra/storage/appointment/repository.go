package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	"github.com/jpinedac/BRB-AgendaService/pkg/sqlbuilder"
	"github.com/jpinedac/BRB-AgendaService/pkg/txmanager"
)

// Repository repositorio de citas
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de citas
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserta una cita y devuelve la entidad con su id asignado
func (r *Repository) Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("appointments").
		Columns(
			"barber_id",
			"primary_service_id",
			"client_id",
			"start_dt",
			"end_dt",
			"status",
			"notes",
			"created_at",
		).
		Values(
			ap.BarberID,
			ap.PrimaryServiceID,
			ap.ClientID,
			ap.StartAt,
			ap.EndAt,
			ap.Status,
			ap.Notes,
			ap.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ap.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - last insert id: %v", ErrExecQuery, err)
	}

	return ap, nil
}

// GetByID devuelve una cita por id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectAppointment().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var ap domain.Appointment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ap.ID,
		&ap.BarberID,
		&ap.PrimaryServiceID,
		&ap.ClientID,
		&ap.StartAt,
		&ap.EndAt,
		&ap.Status,
		&ap.Notes,
		&ap.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return &ap, nil
}

// Update reescribe barbero, horario, estado, notas y servicio principal
func (r *Repository) Update(ctx context.Context, ap *domain.Appointment) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("appointments").
		Set("barber_id", ap.BarberID).
		Set("primary_service_id", ap.PrimaryServiceID).
		Set("start_dt", ap.StartAt).
		Set("end_dt", ap.EndAt).
		Set("status", ap.Status).
		Set("notes", ap.Notes).
		Where(squirrel.Eq{"id": ap.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// UpdateStatus cambia solo el estado de la cita
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete elimina físicamente una cita. La capa de servicio verifica antes
// que no tenga cobro asociado.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// HasOverlap indica si existe una cita RESERVED o SERVICED del barbero que
// se solape con [start, end). Intervalos semiabiertos: tocar extremos no es
// choque. excludeID omite la propia cita al editar o reprogramar.
func (r *Repository) HasOverlap(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"status": blockingStatusStrings()}).
		Where(squirrel.Lt{"start_dt": end}).
		Where(squirrel.Gt{"end_dt": start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListByRange devuelve las citas del rango ordenadas por hora de inicio,
// con filtros opcionales por barbero y estado
func (r *Repository) ListByRange(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointment().
		Where(squirrel.GtOrEq{"start_dt": filter.Start}).
		Where(squirrel.Lt{"start_dt": filter.End})

	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.OrderBy("start_dt ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// CountForBarberOnDate cuenta las citas RESERVED o SERVICED del barbero en
// una fecha calendario. Se usa como guarda antes de marcar un descanso.
func (r *Repository) CountForBarberOnDate(ctx context.Context, barberID int64, date time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := sqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"status": blockingStatusStrings()}).
		Where(squirrel.GtOrEq{"start_dt": dayStart}).
		Where(squirrel.Lt{"start_dt": dayEnd}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountForBarberOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForBarberOnDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatusInRange cuenta citas por estado dentro del rango (para reportes)
func (r *Repository) CountByStatusInRange(ctx context.Context, start, end time.Time, barberID *int64) (map[domain.AppointmentStatus]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select("status", "COUNT(*)").
		From("appointments").
		Where(squirrel.GtOrEq{"start_dt": start}).
		Where(squirrel.Lt{"start_dt": end}).
		GroupBy("status")

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *barberID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.AppointmentStatus]int)
	for rows.Next() {
		var status domain.AppointmentStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatusInRange - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatusInRange - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

func selectAppointment() squirrel.SelectBuilder {
	return sqlbuilder.Select(
		"id",
		"barber_id",
		"primary_service_id",
		"client_id",
		"start_dt",
		"end_dt",
		"status",
		"notes",
		"created_at",
	).From("appointments")
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var ap domain.Appointment
		err := rows.Scan(
			&ap.ID,
			&ap.BarberID,
			&ap.PrimaryServiceID,
			&ap.ClientID,
			&ap.StartAt,
			&ap.EndAt,
			&ap.Status,
			&ap.Notes,
			&ap.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &ap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func blockingStatusStrings() []string {
	statuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
