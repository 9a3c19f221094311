package reports

import "errors"

var (
	// ErrInvalidRange el rango de fechas es inválido
	ErrInvalidRange = errors.New("el rango de fechas es inválido")
	// ErrInternal error interno del servicio
	ErrInternal = errors.New("error interno del servicio de reportes")
)
