package barber

import "errors"

var (
	// ErrBarberNotFound se devuelve cuando el barbero no existe
	ErrBarberNotFound = errors.New("barber.repository: barber not found")

	// ErrBuildQuery se devuelve al fallar la construcción del SQL
	ErrBuildQuery = errors.New("barber.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución del SQL
	ErrExecQuery = errors.New("barber.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo de resultados
	ErrScanRow = errors.New("barber.repository: failed to scan row")
)
