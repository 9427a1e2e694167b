package wire

import (
	"rental-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	// GET /api/availability - per-date booked/price feed (public)
	r.Get("/api/availability", availabilityHandler.GetCalendar)
}
