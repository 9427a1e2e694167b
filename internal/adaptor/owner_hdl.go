package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type OwnerHandler struct {
	pricing      usecase.PricingService
	availability usecase.AvailabilityService
	booking      usecase.BookingService
	log          *zap.Logger
}

func NewOwnerHandler(
	pricing usecase.PricingService,
	availability usecase.AvailabilityService,
	booking usecase.BookingService,
	log *zap.Logger,
) *OwnerHandler {
	return &OwnerHandler{
		pricing:      pricing,
		availability: availability,
		booking:      booking,
		log:          log.With(zap.String("handler", "owner")),
	}
}

// GetDashboard handles GET /api/owner/dashboard
func (h *OwnerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	baseRate, err := h.pricing.GetBaseRate(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get base rate")
		return
	}

	bookings, err := h.booking.GetUpcomingBookings(r.Context(), utils.Today())
	if err != nil {
		h.handleServiceError(w, err, "get upcoming bookings")
		return
	}

	utils.ResponseSuccess(w, "success", response.DashboardResponse{
		BaseRate:         baseRate.StringFixed(2),
		UpcomingBookings: bookings,
	})
}

// UpdateBaseRate handles PUT /api/owner/pricing/base-rate
func (h *OwnerHandler) UpdateBaseRate(w http.ResponseWriter, r *http.Request) {
	var req request.SetBaseRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.pricing.SetBaseRate(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "set base rate")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UpsertOverride handles PUT /api/owner/pricing/overrides
func (h *OwnerHandler) UpsertOverride(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.pricing.UpsertOverride(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "upsert price override")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UpdateBookingWindow handles PUT /api/owner/availability/window
func (h *OwnerHandler) UpdateBookingWindow(w http.ResponseWriter, r *http.Request) {
	var req request.SetBookingWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.availability.SetBookingWindow(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "set booking window")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetBookingWindow handles GET /api/owner/availability/window
func (h *OwnerHandler) GetBookingWindow(w http.ResponseWriter, r *http.Request) {
	window, err := h.availability.GetBookingWindow(r.Context(), utils.Today())
	if err != nil {
		h.handleServiceError(w, err, "get booking window")
		return
	}

	utils.ResponseSuccess(w, "success", window)
}

// handleServiceError maps owner mutation errors. Rejected input never
// corrupts stored state, so anything user-shaped is a bad request.
func (h *OwnerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - invalid input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
