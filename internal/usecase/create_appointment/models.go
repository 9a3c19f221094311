package create_appointment

import "time"

// Request datos para crear una cita. ClientName es opcional: sin nombre la
// cita queda sin cliente asociado (walk-in).
type Request struct {
	BarberID    int64
	ServiceID   int64
	ClientName  *string
	ClientPhone *string
	StartAt     time.Time
	Notes       *string
}

// Response la cita creada
type Response struct {
	ID               int64
	BarberID         int64
	PrimaryServiceID *int64
	ClientID         *int64
	StartAt          time.Time
	EndAt            time.Time
	Status           string
	Notes            *string
	CreatedAt        time.Time
}
