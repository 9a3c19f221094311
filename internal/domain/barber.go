package domain

import "time"

// Barber represents a barber of the shop. Barbers are never hard-deleted,
// only soft-disabled by clearing the active flag.
type Barber struct {
	ID     int64
	Name   string
	Active bool
}

// BarberDayOff marks a whole calendar day as unavailable for one barber.
// Unique per (barber, date).
type BarberDayOff struct {
	ID       int64
	BarberID int64
	Date     time.Time // solo fecha, la hora se ignora
	Note     *string
}
