package wire

import (
	"rental-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - validate a stay and hand off to checkout (public)
	r.Post("/api/bookings", bookingHandler.CreateBooking)
}
