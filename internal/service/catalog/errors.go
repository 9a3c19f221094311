package catalog

import "errors"

var (
	// ErrBarberNotFound el barbero no existe
	ErrBarberNotFound = errors.New("el barbero no existe")
	// ErrServiceNotFound el servicio no existe
	ErrServiceNotFound = errors.New("el servicio no existe")
	// ErrDayOffHasAppointments hay citas agendadas para ese día
	ErrDayOffHasAppointments = errors.New("el barbero tiene citas agendadas para ese día")
	// ErrInvalidInput los datos recibidos son inválidos
	ErrInvalidInput = errors.New("los datos recibidos son inválidos")
	// ErrInternal error interno del servicio
	ErrInternal = errors.New("error interno del servicio de catálogo")
)
