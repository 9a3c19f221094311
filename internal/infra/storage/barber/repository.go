package barber

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

// Repository repositorio de barberos y sus días de descanso
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de barberos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List devuelve los barberos ordenados por nombre.
// Con includeInactive=false solo devuelve los activos.
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Barber, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select("id", "name", "active").
		From("barbers").
		OrderBy("name ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": 1})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var b domain.Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.Active); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetByID devuelve un barbero por su id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("id", "name", "active").
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Name, &b.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}

	return &b, nil
}

// Create inserta un barbero y devuelve su id
func (r *Repository) Create(ctx context.Context, name string, active bool) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("barbers").
		Columns("name", "active").
		Values(name, active).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - last insert id: %v", ErrExecQuery, err)
	}

	return id, nil
}

// Update actualiza nombre y bandera de actividad.
// Los barberos nunca se eliminan, solo se desactivan.
func (r *Repository) Update(ctx context.Context, id int64, name string, active bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("barbers").
		Set("name", name).
		Set("active", active).
		Where(squirrel.Eq{"id": id}).
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
		return ErrBarberNotFound
	}

	return nil
}

// ListDaysOff devuelve los descansos de un barbero ordenados por fecha
func (r *Repository) ListDaysOff(ctx context.Context, barberID int64) ([]*domain.BarberDayOff, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("id", "barber_id", "off_date", "note").
		From("barber_days_off").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("off_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDaysOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDaysOff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	daysOff := make([]*domain.BarberDayOff, 0)
	for rows.Next() {
		var d domain.BarberDayOff
		var offDate string
		if err := rows.Scan(&d.ID, &d.BarberID, &offDate, &d.Note); err != nil {
			return nil, fmt.Errorf("%w: ListDaysOff - scan row: %v", ErrScanRow, err)
		}
		d.Date, err = time.Parse(domain.DateFormat, offDate)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDaysOff - parse off_date: %v", ErrScanRow, err)
		}
		daysOff = append(daysOff, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDaysOff - rows error: %v", ErrScanRow, err)
	}

	return daysOff, nil
}

// AddDayOff marca un día de descanso. La inserción es idempotente por la
// restricción UNIQUE (barber_id, off_date).
func (r *Repository) AddDayOff(ctx context.Context, barberID int64, date time.Time, note *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("barber_days_off").
		Columns("barber_id", "off_date", "note").
		Values(barberID, date.Format(domain.DateFormat), note).
		Suffix("ON CONFLICT (barber_id, off_date) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddDayOff - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddDayOff - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveDayOff elimina un día de descanso
func (r *Repository) RemoveDayOff(ctx context.Context, barberID int64, date time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Delete("barber_days_off").
		Where(squirrel.Eq{
			"barber_id": barberID,
			"off_date":  date.Format(domain.DateFormat),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveDayOff - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RemoveDayOff - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// IsOff indica si el barbero descansa en la fecha dada
func (r *Repository) IsOff(ctx context.Context, barberID int64, date time.Time) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("1").
		From("barber_days_off").
		Where(squirrel.Eq{
			"barber_id": barberID,
			"off_date":  date.Format(domain.DateFormat),
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsOff - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsOff - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}
