package create_appointment

import (
	"time"

	createAppointment "github.com/jpinedac/BRB-AgendaService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest modelo HTTP del request
type CreateAppointmentRequest struct {
	BarberID    int64   `json:"barberId"`
	ServiceID   int64   `json:"serviceId"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	StartAt     string  `json:"startAt"` // RFC3339
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse modelo HTTP de la cita creada
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	BarberID         int64   `json:"barberId"`
	PrimaryServiceID *int64  `json:"primaryServiceId,omitempty"`
	ClientID         *int64  `json:"clientId,omitempty"`
	StartAt          string  `json:"startAt"`
	EndAt            string  `json:"endAt"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// ToUseCaseRequest convierte el request HTTP al modelo del use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BarberID:    r.BarberID,
		ServiceID:   r.ServiceID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		StartAt:     startAt,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse convierte la respuesta del use case al modelo HTTP
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		BarberID:         resp.BarberID,
		PrimaryServiceID: resp.PrimaryServiceID,
		ClientID:         resp.ClientID,
		StartAt:          resp.StartAt.Format(time.RFC3339),
		EndAt:            resp.EndAt.Format(time.RFC3339),
		Status:           resp.Status,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
