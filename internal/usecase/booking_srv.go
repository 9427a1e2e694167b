package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/payment"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// CreateCheckoutSession validates the requested stay and hands the guest
	// off to the payment provider. No booking row is written here: the ledger
	// only sees paid bookings, so the quote-to-payment window is an accepted
	// race resolved at confirmation time.
	CreateCheckoutSession(ctx context.Context, req *request.CreateBookingRequest) (*response.CheckoutResponse, error)

	// GetUpcomingBookings lists bookings with check-out on or after today,
	// ordered by check-in (owner dashboard).
	GetUpcomingBookings(ctx context.Context, today time.Time) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo         *repository.Repository
	pricing      PricingService
	availability AvailabilityService
	checkout     payment.CheckoutProvider
	log          *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	pricing PricingService,
	availability AvailabilityService,
	checkout payment.CheckoutProvider,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:         repo,
		pricing:      pricing,
		availability: availability,
		checkout:     checkout,
		log:          log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateCheckoutSession(ctx context.Context, req *request.CreateBookingRequest) (*response.CheckoutResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, err
	}

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}

	today := utils.Today()
	if checkIn.Before(today) {
		return nil, ErrPastCheckIn
	}

	// Window bounds: check-out may land one day past the horizon because it
	// does not consume that night.
	maxDate, err := s.availability.MaxBookableDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if checkIn.After(maxDate) || checkOut.After(maxDate.AddDate(0, 0, 1)) {
		return nil, ErrOutsideWindow
	}

	overlap, err := s.repo.Booking.HasPaidOverlap(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, repository.ErrDatesAlreadyBooked
	}

	total, err := s.pricing.CalculateTotalPrice(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	sess, err := s.checkout.CreateSession(ctx, payment.CheckoutParams{
		GuestName:  req.Name,
		GuestEmail: req.Email,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Total:      total,
	})
	if err != nil {
		s.log.Error("Failed to create payment session",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("create payment session: %w", err)
	}

	s.log.Info("Guest handed off to checkout",
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
		zap.String("total_price", total.StringFixed(2)),
	)

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	return &response.CheckoutResponse{
		CheckoutURL: sess.URL,
		TotalPrice:  total.StringFixed(2),
		Nights:      nights,
	}, nil
}

func (s *bookingService) GetUpcomingBookings(ctx context.Context, today time.Time) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindUpcoming(ctx, today)
	if err != nil {
		s.log.Error("Failed to get upcoming bookings", zap.Error(err))
		return nil, fmt.Errorf("get upcoming bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return responses, nil
}
