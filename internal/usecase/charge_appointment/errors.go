package charge_appointment

import "errors"

var (
	// ErrAppointmentNotFound se devuelve cuando la cita no existe
	ErrAppointmentNotFound = errors.New("charge_appointment: cita no encontrada")

	// ErrAlreadyCharged se devuelve cuando la cita ya tiene cobro; a lo sumo
	// hay un cobro por cita
	ErrAlreadyCharged = errors.New("charge_appointment: la cita ya fue cobrada")

	// ErrServiceNotFound se devuelve cuando alguna línea referencia un
	// servicio inexistente
	ErrServiceNotFound = errors.New("charge_appointment: servicio no encontrado")

	// ErrInvalidInput se devuelve ante datos de entrada inválidos
	ErrInvalidInput = errors.New("charge_appointment: datos de entrada inválidos")

	// ErrInternal se devuelve ante errores internos del use case
	ErrInternal = errors.New("charge_appointment: error interno")
)
