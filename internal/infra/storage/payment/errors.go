package payment

import "errors"

var (
	// ErrPaymentNotFound se devuelve cuando la cita no tiene cobro
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrBuildQuery se devuelve al fallar la construcción del SQL
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución del SQL
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo de resultados
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
