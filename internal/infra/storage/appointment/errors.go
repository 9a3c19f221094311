package appointment

import "errors"

var (
	// ErrAppointmentNotFound se devuelve cuando la cita no existe
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery se devuelve al fallar la construcción del SQL
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución del SQL
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo de resultados
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
