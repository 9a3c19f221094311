package payment

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

// Repository repositorio de cobros y sus líneas snapshot
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de cobros
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserta la cabecera del cobro y devuelve su id.
// La restricción UNIQUE sobre appointment_id respalda la regla de un solo
// cobro por cita; la capa de servicio la verifica antes de insertar.
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("payments").
		Columns(
			"appointment_id",
			"total_amount",
			"barber_total",
			"shop_total",
			"payment_method",
			"paid_at",
		).
		Values(
			p.AppointmentID,
			p.TotalAmount,
			p.BarberTotal,
			p.ShopTotal,
			p.PaymentMethod,
			p.PaidAt,
		).
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

// CreateLines inserta las líneas snapshot de un cobro. Las líneas son
// inmutables: nunca se actualizan, solo se eliminan junto con su cobro.
func (r *Repository) CreateLines(ctx context.Context, lines []domain.PaymentServiceLine) error {
	if len(lines) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	insertBuilder := sqlbuilder.Insert("payment_service_lines").
		Columns(
			"appointment_id",
			"service_id",
			"qty",
			"unit_price_snapshot",
			"barber_earning_snapshot",
			"shop_liquidation_snapshot",
		)

	for _, line := range lines {
		insertBuilder = insertBuilder.Values(
			line.AppointmentID,
			line.ServiceID,
			line.Qty,
			line.UnitPriceSnapshot,
			line.BarberEarningSnapshot,
			line.ShopLiquidationSnapshot,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateLines - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateLines - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByAppointment devuelve el cobro de una cita, si existe
func (r *Repository) GetByAppointment(ctx context.Context, appointmentID int64) (*domain.Payment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(
		"id",
		"appointment_id",
		"total_amount",
		"barber_total",
		"shop_total",
		"payment_method",
		"paid_at",
	).
		From("payments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Payment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.AppointmentID,
		&p.TotalAmount,
		&p.BarberTotal,
		&p.ShopTotal,
		&p.PaymentMethod,
		&p.PaidAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointment - scan payment: %v", ErrScanRow, err)
	}

	return &p, nil
}

// GetLinesByAppointment devuelve las líneas snapshot de un cobro
func (r *Repository) GetLinesByAppointment(ctx context.Context, appointmentID int64) ([]*domain.PaymentServiceLine, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(
		"id",
		"appointment_id",
		"service_id",
		"qty",
		"unit_price_snapshot",
		"barber_earning_snapshot",
		"shop_liquidation_snapshot",
	).
		From("payment_service_lines").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLinesByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLinesByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]*domain.PaymentServiceLine, 0)
	for rows.Next() {
		var line domain.PaymentServiceLine
		err := rows.Scan(
			&line.ID,
			&line.AppointmentID,
			&line.ServiceID,
			&line.Qty,
			&line.UnitPriceSnapshot,
			&line.BarberEarningSnapshot,
			&line.ShopLiquidationSnapshot,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetLinesByAppointment - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLinesByAppointment - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}

// DeleteByAppointment elimina las líneas y la cabecera del cobro de una cita
func (r *Repository) DeleteByAppointment(ctx context.Context, appointmentID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	linesQuery, linesArgs, err := sqlbuilder.Delete("payment_service_lines").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointment - build lines delete: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, linesQuery, linesArgs...); err != nil {
		return fmt.Errorf("%w: DeleteByAppointment - delete lines: %v", ErrExecQuery, err)
	}

	paymentQuery, paymentArgs, err := sqlbuilder.Delete("payments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointment - build payment delete: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, paymentQuery, paymentArgs...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointment - delete payment: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointment - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// ListByRangeWithBarber devuelve los cobros del rango con el nombre del
// barbero resuelto (join payments -> appointments -> barbers), ordenados
// por fecha de pago, con filtro opcional por barbero
func (r *Repository) ListByRangeWithBarber(ctx context.Context, start, end time.Time, barberID *int64) ([]*domain.PaymentRecord, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select(
		"p.id",
		"p.appointment_id",
		"a.barber_id",
		"b.name",
		"p.total_amount",
		"p.barber_total",
		"p.shop_total",
		"p.payment_method",
		"p.paid_at",
	).
		From("payments p").
		Join("appointments a ON p.appointment_id = a.id").
		Join("barbers b ON a.barber_id = b.id").
		Where(squirrel.GtOrEq{"p.paid_at": start}).
		Where(squirrel.Lt{"p.paid_at": end})

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.barber_id": *barberID})
	}

	query, args, err := selectBuilder.OrderBy("p.paid_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRangeWithBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRangeWithBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.PaymentRecord, 0)
	for rows.Next() {
		var rec domain.PaymentRecord
		err := rows.Scan(
			&rec.PaymentID,
			&rec.AppointmentID,
			&rec.BarberID,
			&rec.BarberName,
			&rec.TotalAmount,
			&rec.BarberTotal,
			&rec.ShopTotal,
			&rec.PaymentMethod,
			&rec.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRangeWithBarber - scan row: %v", ErrScanRow, err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRangeWithBarber - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// ListLinesByRangeWithService devuelve las líneas cobradas del rango con el
// nombre del servicio resuelto (join payments -> lines -> services). Es la
// segunda pasada del reporte; debe cubrir el mismo rango que la primera.
func (r *Repository) ListLinesByRangeWithService(ctx context.Context, start, end time.Time, barberID *int64) ([]*domain.ServiceLineRecord, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select(
		"l.appointment_id",
		"a.barber_id",
		"l.service_id",
		"s.name",
		"l.qty",
		"l.unit_price_snapshot * l.qty",
	).
		From("payment_service_lines l").
		Join("payments p ON l.appointment_id = p.appointment_id").
		Join("appointments a ON l.appointment_id = a.id").
		Join("services s ON l.service_id = s.id").
		Where(squirrel.GtOrEq{"p.paid_at": start}).
		Where(squirrel.Lt{"p.paid_at": end})

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.barber_id": *barberID})
	}

	query, args, err := selectBuilder.OrderBy("p.paid_at ASC, l.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinesByRangeWithService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinesByRangeWithService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ServiceLineRecord, 0)
	for rows.Next() {
		var rec domain.ServiceLineRecord
		err := rows.Scan(
			&rec.AppointmentID,
			&rec.BarberID,
			&rec.ServiceID,
			&rec.ServiceName,
			&rec.Qty,
			&rec.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListLinesByRangeWithService - scan row: %v", ErrScanRow, err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLinesByRangeWithService - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
