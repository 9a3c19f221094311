package agenda

import "errors"

var (
	// ErrAppointmentNotFound se devuelve cuando la cita no existe
	ErrAppointmentNotFound = errors.New("agenda: cita no encontrada")

	// ErrServiceNotFound se devuelve cuando el servicio no existe o no está
	// disponible para agendar
	ErrServiceNotFound = errors.New("agenda: servicio no encontrado")

	// ErrBarberDayOff se devuelve cuando el barbero descansa ese día;
	// siempre se envuelve con la fecha formateada (DD/MM/YYYY)
	ErrBarberDayOff = errors.New("agenda: el barbero descansa")

	// ErrOutsideBusinessHours se devuelve cuando la cita sale del horario
	ErrOutsideBusinessHours = errors.New("agenda: la cita está fuera del horario de atención")

	// ErrInvalidInterval se devuelve cuando la hora fin no es posterior a la
	// hora inicio
	ErrInvalidInterval = errors.New("agenda: la hora fin debe ser posterior a la hora inicio")

	// ErrScheduleConflict se devuelve cuando hay choque con otra cita del
	// mismo barbero
	ErrScheduleConflict = errors.New("agenda: existe un choque de horario con otra cita del mismo barbero")

	// ErrPaymentExists se devuelve al intentar eliminar una cita que ya
	// tiene cobro registrado
	ErrPaymentExists = errors.New("agenda: la cita tiene un cobro asociado")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("agenda: internal error")
)
