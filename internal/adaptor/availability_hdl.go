package adaptor

import (
	"net/http"

	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetCalendar handles GET /api/availability (public feed for the calendar UI)
func (h *AvailabilityHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	days, err := h.service.GetCalendar(r.Context(), utils.Today())
	if err != nil {
		h.log.Error("Failed to build availability calendar", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", days)
}
