package get_charge

import (
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/service/billing"
)

// ChargeLineItem una línea snapshot del cobro
type ChargeLineItem struct {
	ServiceID       int64   `json:"serviceId"`
	Qty             int     `json:"qty"`
	UnitPrice       float64 `json:"unitPrice"`
	BarberEarning   float64 `json:"barberEarning"`
	ShopLiquidation float64 `json:"shopLiquidation"`
}

// ChargeResponse modelo HTTP del cobro con sus líneas
type ChargeResponse struct {
	PaymentID     int64            `json:"paymentId"`
	AppointmentID int64            `json:"appointmentId"`
	Total         float64          `json:"total"`
	BarberTotal   float64          `json:"barberTotal"`
	ShopTotal     float64          `json:"shopTotal"`
	PaymentMethod string           `json:"paymentMethod"`
	PaidAt        string           `json:"paidAt"`
	Lines         []ChargeLineItem `json:"lines"`
}

// FromServiceCharge convierte el cobro del servicio al modelo HTTP
func FromServiceCharge(charge *billing.Charge) *ChargeResponse {
	lines := make([]ChargeLineItem, 0, len(charge.Lines))
	for _, line := range charge.Lines {
		lines = append(lines, ChargeLineItem{
			ServiceID:       line.ServiceID,
			Qty:             line.Qty,
			UnitPrice:       line.UnitPriceSnapshot,
			BarberEarning:   line.BarberEarningSnapshot,
			ShopLiquidation: line.ShopLiquidationSnapshot,
		})
	}
	return &ChargeResponse{
		PaymentID:     charge.Payment.ID,
		AppointmentID: charge.Payment.AppointmentID,
		Total:         charge.Payment.TotalAmount,
		BarberTotal:   charge.Payment.BarberTotal,
		ShopTotal:     charge.Payment.ShopTotal,
		PaymentMethod: charge.Payment.PaymentMethod,
		PaidAt:        charge.Payment.PaidAt.Format(time.RFC3339),
		Lines:         lines,
	}
}
