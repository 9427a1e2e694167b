package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/pkg/middleware"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOwner(r chi.Router, ownerHandler *adaptor.OwnerHandler, config *utils.Config, log *zap.Logger) {
	// Owner dashboard routes, guarded by the shared owner key
	r.Route("/api/owner", func(r chi.Router) {
		r.Use(middleware.OwnerKey(config.Owner.APIKey, log))

		// GET /api/owner/dashboard - upcoming bookings + current base rate
		r.Get("/dashboard", ownerHandler.GetDashboard)

		// PUT /api/owner/pricing/base-rate - set the global nightly rate
		r.Put("/pricing/base-rate", ownerHandler.UpdateBaseRate)

		// PUT /api/owner/pricing/overrides - set a per-date rate override
		r.Put("/pricing/overrides", ownerHandler.UpsertOverride)

		// GET/PUT /api/owner/availability/window - booking window config
		r.Get("/availability/window", ownerHandler.GetBookingWindow)
		r.Put("/availability/window", ownerHandler.UpdateBookingWindow)
	})
}
