package charge_appointment

import "github.com/jpinedac/BRB-AgendaService/internal/domain"

// Request datos para cobrar una cita
type Request struct {
	AppointmentID int64
	Items         []domain.ChargeItem
	PaymentMethod string
}

// Response totales calculados del cobro, para el recibo
type Response struct {
	PaymentID   int64
	Total       float64
	BarberTotal float64
	ShopTotal   float64
}
