package usecase

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/dto/request"
	"rental-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newAvailabilityService(t *testing.T) (AvailabilityService, *memBookingRepo) {
	t.Helper()
	repo, bookings := newTestRepository()
	pricing := NewPricingService(repo, zap.NewNop())
	return NewAvailabilityService(repo, pricing, zap.NewNop()), bookings
}

func TestMaxBookableDateTwoMonths(t *testing.T) {
	svc, _ := newAvailabilityService(t)
	ctx := context.Background()

	if err := svc.SetBookingWindow(ctx, &request.SetBookingWindowRequest{MonthsAhead: 2}); err != nil {
		t.Fatalf("set window: %v", err)
	}

	today := date("2026-09-01")
	maxDate, err := svc.MaxBookableDate(ctx, today)
	if err != nil {
		t.Fatalf("max bookable date: %v", err)
	}

	// Flat 30-day months: 2 months is exactly 60 days
	if want := today.AddDate(0, 0, 60); !maxDate.Equal(want) {
		t.Errorf("expected %s, got %s", utils.FormatDate(want), utils.FormatDate(maxDate))
	}
}

func TestMaxBookableDateDefaultWindow(t *testing.T) {
	svc, _ := newAvailabilityService(t)

	today := date("2026-09-01")
	maxDate, err := svc.MaxBookableDate(context.Background(), today)
	if err != nil {
		t.Fatalf("max bookable date: %v", err)
	}

	// No config row: 3-month default, 90 days
	if want := today.AddDate(0, 0, 90); !maxDate.Equal(want) {
		t.Errorf("expected %s, got %s", utils.FormatDate(want), utils.FormatDate(maxDate))
	}
}

func TestSetBookingWindowRejectsOutOfRange(t *testing.T) {
	svc, _ := newAvailabilityService(t)
	ctx := context.Background()

	for _, months := range []int{0, -1, 25} {
		if err := svc.SetBookingWindow(ctx, &request.SetBookingWindowRequest{MonthsAhead: months}); err == nil {
			t.Errorf("expected error for months_ahead=%d", months)
		}
	}

	// Rejected writes leave the default in place
	maxDate, err := svc.MaxBookableDate(ctx, date("2026-09-01"))
	if err != nil {
		t.Fatalf("max bookable date: %v", err)
	}
	if want := date("2026-09-01").AddDate(0, 0, 90); !maxDate.Equal(want) {
		t.Errorf("expected default window after rejected writes, got %s", utils.FormatDate(maxDate))
	}
}

func TestGetCalendarMarksBookedAndPricedDates(t *testing.T) {
	svc, bookings := newAvailabilityService(t)
	ctx := context.Background()

	if err := svc.SetBookingWindow(ctx, &request.SetBookingWindowRequest{MonthsAhead: 1}); err != nil {
		t.Fatalf("set window: %v", err)
	}

	today := date("2026-09-01")
	if err := bookings.ConfirmBooking(ctx, &entity.Booking{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       "Alice",
		Email:      "alice@example.com",
		CheckIn:    date("2026-09-05"),
		CheckOut:   date("2026-09-07"),
		TotalPrice: decimal.NewFromInt(300),
		Paid:       true,
	}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	days, err := svc.GetCalendar(ctx, today)
	if err != nil {
		t.Fatalf("get calendar: %v", err)
	}

	// [today, today+30] inclusive
	if len(days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(days))
	}

	byDate := make(map[string]int)
	for i, day := range days {
		byDate[day.Date] = i
	}

	for _, booked := range []string{"2026-09-05", "2026-09-06"} {
		day := days[byDate[booked]]
		if !day.Booked {
			t.Errorf("expected %s booked", booked)
		}
		if day.Price != "" {
			t.Errorf("booked date %s should carry no price, got %s", booked, day.Price)
		}
	}

	// Check-out day does not consume a night
	checkOutDay := days[byDate["2026-09-07"]]
	if checkOutDay.Booked {
		t.Error("check-out date should not be marked booked")
	}
	if checkOutDay.Price != "150.00" {
		t.Errorf("expected default price 150.00 on check-out date, got %s", checkOutDay.Price)
	}
}
