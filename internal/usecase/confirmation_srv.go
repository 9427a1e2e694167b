package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/mailer"
	"rental-booking/pkg/payment"
	"rental-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ConfirmationService interface {
	// HandleEvent drives a payment-provider callback through verification,
	// overlap re-check and atomic insertion. The returned booking is nil when
	// the event was acknowledged without creating one (wrong kind, unusable
	// metadata). Errors wrap payment.ErrInvalidSignature,
	// repository.ErrDatesAlreadyBooked, or a persistence failure.
	HandleEvent(ctx context.Context, payload []byte, signature string) (*entity.Booking, error)
}

type confirmationService struct {
	repo     *repository.Repository
	pricing  PricingService
	verifier payment.EventVerifier
	notifier mailer.Notifier
	log      *zap.Logger
}

func NewConfirmationService(
	repo *repository.Repository,
	pricing PricingService,
	verifier payment.EventVerifier,
	notifier mailer.Notifier,
	log *zap.Logger,
) ConfirmationService {
	return &confirmationService{
		repo:     repo,
		pricing:  pricing,
		verifier: verifier,
		notifier: notifier,
		log:      log.With(zap.String("service", "confirmation")),
	}
}

func (s *confirmationService) HandleEvent(ctx context.Context, payload []byte, signature string) (*entity.Booking, error) {
	event, err := s.verifier.Verify(payload, signature)
	if err != nil {
		s.log.Warn("Rejected payment event", zap.Error(err))
		return nil, err
	}

	// Only completed checkouts create bookings; everything else is
	// acknowledged so the provider does not retry.
	if event.Type != payment.EventCheckoutCompleted {
		s.log.Debug("Ignoring payment event", zap.String("type", event.Type))
		return nil, nil
	}

	name := event.Metadata["name"]
	email := event.Metadata["email"]
	checkInRaw := event.Metadata["check_in"]
	checkOutRaw := event.Metadata["check_out"]

	// Unusable metadata is acknowledged as a no-op: the provider cannot
	// repair the event and would redeliver it forever.
	if name == "" || email == "" || checkInRaw == "" || checkOutRaw == "" {
		s.log.Warn("Payment event missing booking metadata",
			zap.String("type", event.Type),
		)
		return nil, nil
	}

	checkIn, err := utils.ParseDate(checkInRaw)
	if err != nil {
		s.log.Warn("Payment event has unparseable check-in",
			zap.String("check_in", checkInRaw),
		)
		return nil, nil
	}
	checkOut, err := utils.ParseDate(checkOutRaw)
	if err != nil {
		s.log.Warn("Payment event has unparseable check-out",
			zap.String("check_out", checkOutRaw),
		)
		return nil, nil
	}
	if !checkOut.After(checkIn) {
		s.log.Warn("Payment event has inverted date range",
			zap.String("check_in", checkInRaw),
			zap.String("check_out", checkOutRaw),
		)
		return nil, nil
	}

	// The stored price is recomputed from the pricing store, not trusted
	// from provider metadata.
	total, err := s.pricing.CalculateTotalPrice(ctx, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to price confirmed booking", zap.Error(err))
		return nil, fmt.Errorf("price confirmed booking: %w", err)
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:       name,
		Email:      email,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: total,
		Paid:       true,
	}

	if err := s.repo.Booking.ConfirmBooking(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDatesAlreadyBooked) {
			s.log.Warn("Confirmation rejected, dates already booked",
				zap.String("check_in", checkInRaw),
				zap.String("check_out", checkOutRaw),
			)
			return nil, err
		}
		s.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("check_in", checkInRaw),
			zap.String("check_out", checkOutRaw),
		)
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("check_in", checkInRaw),
		zap.String("check_out", checkOutRaw),
		zap.String("total_price", total.StringFixed(2)),
	)

	// Best-effort: the money has moved, the booking stands even if the
	// notification fails.
	if err := s.notifier.SendBookingConfirmation(name, email, checkIn, checkOut); err != nil {
		s.log.Error("Booking confirmed but notification failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("email", email),
		)
	}

	return booking, nil
}
