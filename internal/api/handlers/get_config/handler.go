package get_config

import (
	"net/http"

	"github.com/jpinedac/BRB-AgendaService/internal/api/handlers"
	"github.com/jpinedac/BRB-AgendaService/internal/config"
)

// ConfigResponse parámetros de agenda que la recepción necesita para armar
// el formulario de citas y de cobro
type ConfigResponse struct {
	OpeningTime        string   `json:"openingTime"`
	ClosingTime        string   `json:"closingTime"`
	MinIntervalMinutes int      `json:"minIntervalMinutes"`
	PaymentMethods     []string `json:"paymentMethods"`
}

type Handler struct {
	schedule config.ScheduleConfig
	logger   Logger
}

func NewHandler(schedule config.ScheduleConfig, logger Logger) *Handler {
	return &Handler{
		schedule: schedule,
		logger:   logger,
	}
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /config - Schedule configuration requested")

	handlers.RespondJSON(w, http.StatusOK, &ConfigResponse{
		OpeningTime:        h.schedule.OpeningTime,
		ClosingTime:        h.schedule.ClosingTime,
		MinIntervalMinutes: h.schedule.MinIntervalMinutes,
		PaymentMethods:     h.schedule.PaymentMethods,
	})
}
