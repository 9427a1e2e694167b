package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

// defaultMonthsAhead masks an absent availability config.
const defaultMonthsAhead = 3

type AvailabilityService interface {
	// MaxBookableDate is today + monthsAhead*30 days. The flat 30-day month
	// is deliberate: switching to calendar months would change which date
	// ranges are accepted.
	MaxBookableDate(ctx context.Context, today time.Time) (time.Time, error)

	GetBookingWindow(ctx context.Context, today time.Time) (*response.BookingWindowResponse, error)
	SetBookingWindow(ctx context.Context, req *request.SetBookingWindowRequest) error

	// GetCalendar reports, for each date in [today, maxBookableDate], either
	// "booked" or the nightly price.
	GetCalendar(ctx context.Context, today time.Time) ([]response.CalendarDay, error)
}

type availabilityService struct {
	repo    *repository.Repository
	pricing PricingService
	log     *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, pricing PricingService, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:    repo,
		pricing: pricing,
		log:     log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) monthsAhead(ctx context.Context) (int, error) {
	config, err := s.repo.AvailabilityConfig.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("get booking window: %w", err)
	}
	if config == nil {
		return defaultMonthsAhead, nil
	}
	return config.MonthsAhead, nil
}

func (s *availabilityService) MaxBookableDate(ctx context.Context, today time.Time) (time.Time, error) {
	months, err := s.monthsAhead(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return today.AddDate(0, 0, months*30), nil
}

func (s *availabilityService) GetBookingWindow(ctx context.Context, today time.Time) (*response.BookingWindowResponse, error) {
	months, err := s.monthsAhead(ctx)
	if err != nil {
		return nil, err
	}

	return &response.BookingWindowResponse{
		MonthsAhead:     months,
		MaxBookableDate: utils.FormatDate(today.AddDate(0, 0, months*30)),
	}, nil
}

func (s *availabilityService) SetBookingWindow(ctx context.Context, req *request.SetBookingWindowRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set booking window validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.repo.AvailabilityConfig.SetMonthsAhead(ctx, req.MonthsAhead); err != nil {
		s.log.Error("Failed to set booking window", zap.Error(err))
		return fmt.Errorf("set booking window: %w", err)
	}

	return nil
}

func (s *availabilityService) GetCalendar(ctx context.Context, today time.Time) ([]response.CalendarDay, error) {
	maxDate, err := s.MaxBookableDate(ctx, today)
	if err != nil {
		return nil, err
	}

	rates, err := s.pricing.NightlyRates(ctx, today, maxDate)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindPaidInRange(ctx, today, maxDate.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	var days []response.CalendarDay
	for date := today; !date.After(maxDate); date = date.AddDate(0, 0, 1) {
		day := response.CalendarDay{Date: utils.FormatDate(date)}
		for _, booking := range bookings {
			if booking.Covers(date) {
				day.Booked = true
				break
			}
		}
		if !day.Booked {
			day.Price = rates[day.Date].StringFixed(2)
		}
		days = append(days, day)
	}

	s.log.Debug("Availability calendar built",
		zap.String("from", utils.FormatDate(today)),
		zap.String("to", utils.FormatDate(maxDate)),
		zap.Int("days", len(days)),
	)

	return days, nil
}
