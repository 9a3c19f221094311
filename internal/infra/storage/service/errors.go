package service

import "errors"

var (
	// ErrServiceNotFound se devuelve cuando el servicio no existe
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrBuildQuery se devuelve al fallar la construcción del SQL
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución del SQL
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo de resultados
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
