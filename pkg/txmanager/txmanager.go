package txmanager

import (
	"context"
	"database/sql"
	"fmt"
)

// DBExecutor interfaz mínima que comparten *sql.DB y *sql.Tx.
// Los repositorios trabajan contra esta interfaz para poder ejecutarse
// tanto dentro como fuera de una transacción.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// GetExecutor devuelve la transacción activa del contexto, o el ejecutor
// por defecto si no hay transacción en curso.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return fallback
}

// IsInTransaction indica si el contexto lleva una transacción activa
func IsInTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok && tx != nil
}

// Manager maneja transacciones sobre *sql.DB propagándolas por el contexto
type Manager struct {
	db *sql.DB
}

// NewManager crea un transaction manager
func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Do ejecuta fn dentro de una transacción. La transacción viaja en el
// contexto: los repositorios la recogen con GetExecutor. Si fn devuelve
// error se hace rollback, si no, commit.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	// Transacciones anidadas reutilizan la transacción externa.
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("txmanager: begin tx: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit tx: %w", err)
	}

	return nil
}
