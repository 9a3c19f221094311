package billing

import "errors"

var (
	// ErrAppointmentNotFound la cita no existe
	ErrAppointmentNotFound = errors.New("la cita no existe")
	// ErrPaymentNotFound la cita no tiene cobro registrado
	ErrPaymentNotFound = errors.New("la cita no tiene cobro registrado")
	// ErrInternal error interno del servicio
	ErrInternal = errors.New("error interno del servicio de facturación")
)
