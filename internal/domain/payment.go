package domain

import "time"

// Payment represents the settlement of one appointment. At most one payment
// exists per appointment; deleting it reverts the appointment to RESERVED.
type Payment struct {
	ID            int64
	AppointmentID int64
	TotalAmount   float64
	BarberTotal   float64
	ShopTotal     float64
	PaymentMethod string
	PaidAt        time.Time
}

// PaymentServiceLine is an immutable snapshot of a charged service line.
// Unit price and split are captured at charge time and never updated,
// insulating historical records from catalog edits.
type PaymentServiceLine struct {
	ID                      int64
	AppointmentID           int64
	ServiceID               int64
	Qty                     int
	UnitPriceSnapshot       float64
	BarberEarningSnapshot   float64
	ShopLiquidationSnapshot float64
}

// ChargeItem una línea solicitada al cobrar: servicio + cantidad
type ChargeItem struct {
	ServiceID int64
	Qty       int
}

// ChargeTotals totales calculados de un cobro
type ChargeTotals struct {
	Total       float64
	BarberTotal float64
	ShopTotal   float64
}
