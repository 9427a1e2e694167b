package repository

import (
	"rental-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	PricingConfig      PricingConfigRepository
	PricingRule        PricingRuleRepository
	AvailabilityConfig AvailabilityConfigRepository
	Booking            BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		PricingConfig:      NewPricingConfigRepository(db, log),
		PricingRule:        NewPricingRuleRepository(db, log),
		AvailabilityConfig: NewAvailabilityConfigRepository(db, log),
		Booking:            NewBookingRepository(db, log),
	}
}
