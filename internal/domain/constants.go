package domain

// Horario por defecto de la barbería
const (
	DefaultOpeningTime = "09:30"
	DefaultClosingTime = "20:00"

	// MinIntervalMinutes intervalo mínimo de agenda; también se usa como
	// duración de respaldo al reprogramar cuando el servicio original
	// ya no existe en el catálogo
	MinIntervalMinutes = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DisplayDateFormat formato con el que se muestran fechas al usuario
	// (por ejemplo en el mensaje de descanso del barbero)
	DisplayDateFormat = "02/01/2006"
)

// DefaultPaymentMethods vocabulario de métodos de pago. Es extensible por
// configuración y el motor de cobros no valida contra él: cualquier cadena
// se acepta como método de pago.
var DefaultPaymentMethods = []string{"Efectivo", "Transferencia", "Tarjeta"}
