package create_appointment

import "errors"

var (
	// ErrServiceNotFound se devuelve cuando el servicio no existe o no está
	// disponible para agendar
	ErrServiceNotFound = errors.New("create_appointment: servicio no encontrado")

	// ErrBarberInactive se devuelve cuando el barbero no existe o no está
	// activo
	ErrBarberInactive = errors.New("create_appointment: el barbero no está activo")

	// ErrBarberDayOff se devuelve cuando el barbero descansa ese día;
	// siempre se envuelve con la fecha formateada (DD/MM/YYYY)
	ErrBarberDayOff = errors.New("create_appointment: el barbero descansa")

	// ErrOutsideBusinessHours se devuelve cuando la cita sale del horario
	ErrOutsideBusinessHours = errors.New("create_appointment: la cita está fuera del horario de atención")

	// ErrInvalidInterval se devuelve cuando la hora fin no es posterior a la
	// hora inicio
	ErrInvalidInterval = errors.New("create_appointment: la hora fin debe ser posterior a la hora inicio")

	// ErrScheduleConflict se devuelve cuando hay choque con otra cita del
	// mismo barbero
	ErrScheduleConflict = errors.New("create_appointment: existe un choque de horario con otra cita del mismo barbero")

	// ErrInvalidInput se devuelve ante datos de entrada inválidos
	ErrInvalidInput = errors.New("create_appointment: datos de entrada inválidos")

	// ErrInternal se devuelve ante errores internos del use case
	ErrInternal = errors.New("create_appointment: error interno")
)
