package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	"github.com/jpinedac/BRB-AgendaService/pkg/sqlbuilder"
	"github.com/jpinedac/BRB-AgendaService/pkg/txmanager"
)

// Repository repositorio del catálogo de servicios
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de servicios
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List devuelve el catálogo. Con includeInactive=false solo los servicios
// visibles para agendar; con true también los desactivados (los cobros de
// citas viejas aún los referencian).
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select(
		"id",
		"name",
		"price",
		"barber_earning",
		"shop_liquidation",
		"duration_min",
		"active",
	).From("services")

	if includeInactive {
		selectBuilder = selectBuilder.OrderBy("active DESC, name ASC")
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": 1}).OrderBy("name ASC")
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.BarberEarning, &s.ShopLiquidation, &s.DurationMin, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID devuelve un servicio por id, activo o no
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(
		"id",
		"name",
		"price",
		"barber_earning",
		"shop_liquidation",
		"duration_min",
		"active",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Price, &s.BarberEarning, &s.ShopLiquidation, &s.DurationMin, &s.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetActiveByID devuelve un servicio solo si está activo
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Service, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, ErrServiceNotFound
	}
	return s, nil
}

// Create inserta un servicio en el catálogo y devuelve su id
func (r *Repository) Create(ctx context.Context, s *domain.Service) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("services").
		Columns("name", "price", "barber_earning", "shop_liquidation", "duration_min", "active").
		Values(s.Name, s.Price, s.BarberEarning, s.ShopLiquidation, s.DurationMin, s.Active).
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

// Update edita un servicio en el catálogo. Los cobros históricos no se ven
// afectados: guardan snapshots de precio y reparto.
func (r *Repository) Update(ctx context.Context, s *domain.Service) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("services").
		Set("name", s.Name).
		Set("price", s.Price).
		Set("barber_earning", s.BarberEarning).
		Set("shop_liquidation", s.ShopLiquidation).
		Set("duration_min", s.DurationMin).
		Set("active", s.Active).
		Where(squirrel.Eq{"id": s.ID}).
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
		return ErrServiceNotFound
	}

	return nil
}
