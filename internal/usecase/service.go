package usecase

import (
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/mailer"
	"rental-booking/pkg/payment"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Pricing      PricingService
	Availability AvailabilityService
	Booking      BookingService
	Confirmation ConfirmationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	gateway := payment.NewStripeGateway(config.Stripe, log)
	notifier := mailer.NewSMTPMailer(config.Email, log)

	pricing := NewPricingService(repo, log)
	availability := NewAvailabilityService(repo, pricing, log)

	return &Service{
		Pricing:      pricing,
		Availability: availability,
		Booking:      NewBookingService(repo, pricing, availability, gateway, log),
		Confirmation: NewConfirmationService(repo, pricing, gateway, notifier, log),
	}
}
