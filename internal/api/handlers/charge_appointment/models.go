package charge_appointment

import (
	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	chargeAppointment "github.com/jpinedac/BRB-AgendaService/internal/usecase/charge_appointment"
)

// ChargeItemRequest una línea a cobrar
type ChargeItemRequest struct {
	ServiceID int64 `json:"serviceId"`
	Qty       int   `json:"qty"`
}

// ChargeAppointmentRequest modelo HTTP del request
type ChargeAppointmentRequest struct {
	Items         []ChargeItemRequest `json:"items"`
	PaymentMethod string              `json:"paymentMethod"`
}

// ChargeResponse modelo HTTP del recibo
type ChargeResponse struct {
	PaymentID   int64   `json:"paymentId"`
	Total       float64 `json:"total"`
	BarberTotal float64 `json:"barberTotal"`
	ShopTotal   float64 `json:"shopTotal"`
}

// ToUseCaseRequest convierte el request HTTP al modelo del use case
func (r *ChargeAppointmentRequest) ToUseCaseRequest(appointmentID int64) *chargeAppointment.Request {
	items := make([]domain.ChargeItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.ChargeItem{
			ServiceID: item.ServiceID,
			Qty:       item.Qty,
		})
	}
	return &chargeAppointment.Request{
		AppointmentID: appointmentID,
		Items:         items,
		PaymentMethod: r.PaymentMethod,
	}
}

// FromUseCaseResponse convierte la respuesta del use case al modelo HTTP
func FromUseCaseResponse(resp *chargeAppointment.Response) *ChargeResponse {
	return &ChargeResponse{
		PaymentID:   resp.PaymentID,
		Total:       resp.Total,
		BarberTotal: resp.BarberTotal,
		ShopTotal:   resp.ShopTotal,
	}
}
