package domain

// Service represents an entry of the service catalog.
//
// Price is expected to equal BarberEarning + ShopLiquidation, but the split
// is advisory: the system does not enforce it. Historical payments snapshot
// these values at charge time, so later edits never alter past records.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	BarberEarning   float64
	ShopLiquidation float64
	DurationMin     int
	Active          bool
}
