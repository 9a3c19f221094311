package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusReserved  AppointmentStatus = "RESERVED"
	StatusServiced  AppointmentStatus = "SERVICED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// Appointment represents a booked slot for one barber
type Appointment struct {
	ID               int64
	BarberID         int64
	PrimaryServiceID *int64
	ClientID         *int64
	StartAt          time.Time
	EndAt            time.Time
	Status           AppointmentStatus
	Notes            *string
	CreatedAt        time.Time
}

// IsBlocking returns true if the appointment occupies its time slot.
// Cancelled and no-show appointments do not block new bookings.
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusReserved || a.Status == StatusServiced
}

// AppointmentFilter filtro para listar citas por rango
type AppointmentFilter struct {
	Start    time.Time
	End      time.Time
	BarberID *int64             // opcional, nil = todos los barberos
	Status   *AppointmentStatus // opcional, nil = todos los estados
}

// BlockingStatuses estados que ocupan agenda; se usan en la consulta
// de choques y en la guarda de descansos
var BlockingStatuses = []AppointmentStatus{
	StatusReserved,
	StatusServiced,
}

// AllStatuses vocabulario completo de estados; los reportes inicializan
// sus conteos con esta lista para que los estados sin citas aparezcan en cero
var AllStatuses = []AppointmentStatus{
	StatusReserved,
	StatusServiced,
	StatusCancelled,
	StatusNoShow,
}
