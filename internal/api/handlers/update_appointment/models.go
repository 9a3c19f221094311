package update_appointment

import (
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/service/agenda"
)

// UpdateAppointmentRequest modelo HTTP del request
type UpdateAppointmentRequest struct {
	BarberID  int64   `json:"barberId"`
	ServiceID int64   `json:"serviceId"`
	StartAt   string  `json:"startAt"` // RFC3339
	Notes     *string `json:"notes,omitempty"`
}

// ToServiceRequest convierte el request HTTP al modelo del servicio
func (r *UpdateAppointmentRequest) ToServiceRequest() (agenda.UpdateRequest, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return agenda.UpdateRequest{}, err
	}

	return agenda.UpdateRequest{
		BarberID:  r.BarberID,
		ServiceID: r.ServiceID,
		StartAt:   startAt,
		Notes:     r.Notes,
	}, nil
}
