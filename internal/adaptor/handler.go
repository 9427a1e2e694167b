package adaptor

import (
	"rental-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Owner        *OwnerHandler
	Webhook      *WebhookHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:      NewBookingHandler(service.Booking, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Owner:        NewOwnerHandler(service.Pricing, service.Availability, service.Booking, log),
		Webhook:      NewWebhookHandler(service.Confirmation, log),
	}
}
