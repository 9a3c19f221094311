package client

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

// Repository repositorio de clientes
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de clientes
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID devuelve un cliente por id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("id", "name", "phone").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return &c, nil
}

// FindByNameAndPhone busca un cliente por coincidencia exacta de nombre y
// teléfono. Un teléfono nulo solo coincide con otro nulo: la deduplicación
// es por el par completo, no por nombre solamente.
func (r *Repository) FindByNameAndPhone(ctx context.Context, name string, phone *string) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select("id", "name", "phone").
		From("clients").
		Where(squirrel.Eq{"name": name})

	if phone == nil {
		selectBuilder = selectBuilder.Where("phone IS NULL")
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"phone": *phone})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByNameAndPhone - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByNameAndPhone - scan client: %v", ErrScanRow, err)
	}

	return &c, nil
}

// Create inserta un cliente y devuelve su id
func (r *Repository) Create(ctx context.Context, name string, phone *string) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("clients").
		Columns("name", "phone").
		Values(name, phone).
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
