package domain

import "time"

// ReportTotals totales agregados de ventas en un rango
type ReportTotals struct {
	Sales       float64
	BarberShare float64
	ShopShare   float64
}

// PaymentRecord un cobro dentro del rango del reporte, con el nombre del
// barbero ya resuelto (join payments -> appointments -> barbers)
type PaymentRecord struct {
	PaymentID     int64
	AppointmentID int64
	BarberID      int64
	BarberName    string
	TotalAmount   float64
	BarberTotal   float64
	ShopTotal     float64
	PaymentMethod string
	PaidAt        time.Time
}

// ServiceLineRecord una línea cobrada dentro del rango, con el nombre del
// servicio ya resuelto (join payments -> lines -> services)
type ServiceLineRecord struct {
	AppointmentID int64
	BarberID      int64
	ServiceID     int64
	ServiceName   string
	Qty           int
	LineTotal     float64
}

// BarberBreakdown desglose por barbero, con etiquetas legibles de los
// servicios cobrados ("Corte x2")
type BarberBreakdown struct {
	BarberID     int64
	BarberName   string
	Totals       ReportTotals
	ServiceLines []string
}

// DayBreakdown desglose por día calendario (YYYY-MM-DD)
type DayBreakdown struct {
	Day    string
	Totals ReportTotals
}

// ReportSummary resultado de un resumen de ventas sobre un rango de fechas.
// StatusCounts siempre contiene los cuatro estados, con cero cuando no hay
// citas de ese estado en el rango.
type ReportSummary struct {
	From         time.Time
	To           time.Time
	Totals       ReportTotals
	Payments     []PaymentRecord
	PerBarber    []BarberBreakdown
	PerDay       []DayBreakdown
	StatusCounts map[AppointmentStatus]int
}
