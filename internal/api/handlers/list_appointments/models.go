package list_appointments

import (
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// AppointmentItem una cita en el listado
type AppointmentItem struct {
	ID               int64   `json:"id"`
	BarberID         int64   `json:"barberId"`
	PrimaryServiceID *int64  `json:"primaryServiceId,omitempty"`
	ClientID         *int64  `json:"clientId,omitempty"`
	StartAt          string  `json:"startAt"`
	EndAt            string  `json:"endAt"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes,omitempty"`
}

// ListAppointmentsResponse modelo HTTP de la respuesta
type ListAppointmentsResponse struct {
	Appointments []AppointmentItem `json:"appointments"`
	Total        int               `json:"total"`
}

// FromDomain convierte las citas del dominio al modelo HTTP
func FromDomain(appointments []*domain.Appointment) *ListAppointmentsResponse {
	items := make([]AppointmentItem, 0, len(appointments))
	for _, ap := range appointments {
		items = append(items, AppointmentItem{
			ID:               ap.ID,
			BarberID:         ap.BarberID,
			PrimaryServiceID: ap.PrimaryServiceID,
			ClientID:         ap.ClientID,
			StartAt:          ap.StartAt.Format(time.RFC3339),
			EndAt:            ap.EndAt.Format(time.RFC3339),
			Status:           string(ap.Status),
			Notes:            ap.Notes,
		})
	}
	return &ListAppointmentsResponse{
		Appointments: items,
		Total:        len(items),
	}
}
