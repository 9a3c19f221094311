package client

import "errors"

var (
	// ErrClientNotFound se devuelve cuando el cliente no existe
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrBuildQuery se devuelve al fallar la construcción del SQL
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución del SQL
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo de resultados
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
