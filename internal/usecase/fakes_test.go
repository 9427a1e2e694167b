package usecase

import (
	"context"
	"sync"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/payment"
	"rental-booking/pkg/utils"

	"github.com/shopspring/decimal"
)

// In-memory repository fakes backing the service tests.

type memPricingConfigRepo struct {
	mu     sync.Mutex
	config *entity.PricingConfig
}

func (r *memPricingConfigRepo) Get(ctx context.Context) (*entity.PricingConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config, nil
}

func (r *memPricingConfigRepo) SetBaseRate(ctx context.Context, rate decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = &entity.PricingConfig{ID: 1, BaseRate: rate, UpdatedAt: time.Now()}
	return nil
}

type memPricingRuleRepo struct {
	mu    sync.Mutex
	rules map[string]*entity.PricingRule
}

func newMemPricingRuleRepo() *memPricingRuleRepo {
	return &memPricingRuleRepo{rules: make(map[string]*entity.PricingRule)}
}

func (r *memPricingRuleRepo) FindByDate(ctx context.Context, date time.Time) (*entity.PricingRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rules[utils.FormatDate(date)], nil
}

func (r *memPricingRuleRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.PricingRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found []*entity.PricingRule
	for _, rule := range r.rules {
		if !rule.Date.Before(from) && rule.Date.Before(to) {
			found = append(found, rule)
		}
	}
	return found, nil
}

func (r *memPricingRuleRepo) Upsert(ctx context.Context, date time.Time, rate decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[utils.FormatDate(date)] = &entity.PricingRule{Date: date, Rate: rate}
	return nil
}

type memAvailabilityConfigRepo struct {
	mu     sync.Mutex
	config *entity.AvailabilityConfig
}

func (r *memAvailabilityConfigRepo) Get(ctx context.Context) (*entity.AvailabilityConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config, nil
}

func (r *memAvailabilityConfigRepo) SetMonthsAhead(ctx context.Context, months int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = &entity.AvailabilityConfig{ID: 1, MonthsAhead: months, UpdatedAt: time.Now()}
	return nil
}

// memBookingRepo serializes check-then-insert with a mutex, the same role
// the advisory lock plays against Postgres.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.Booking
}

func (r *memBookingRepo) overlaps(checkIn, checkOut time.Time) bool {
	for _, b := range r.bookings {
		if b.Paid && b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			return true
		}
	}
	return false
}

func (r *memBookingRepo) HasPaidOverlap(ctx context.Context, checkIn, checkOut time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlaps(checkIn, checkOut), nil
}

func (r *memBookingRepo) ConfirmBooking(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overlaps(booking.CheckIn, booking.CheckOut) {
		return repository.ErrDatesAlreadyBooked
	}
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *memBookingRepo) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found []*entity.Booking
	for _, b := range r.bookings {
		if !b.CheckOut.Before(from) {
			found = append(found, b)
		}
	}
	return found, nil
}

func (r *memBookingRepo) FindPaidInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found []*entity.Booking
	for _, b := range r.bookings {
		if b.Paid && b.CheckIn.Before(to) && b.CheckOut.After(from) {
			found = append(found, b)
		}
	}
	return found, nil
}

func (r *memBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

func newTestRepository() (*repository.Repository, *memBookingRepo) {
	bookings := &memBookingRepo{}
	return &repository.Repository{
		PricingConfig:      &memPricingConfigRepo{},
		PricingRule:        newMemPricingRuleRepo(),
		AvailabilityConfig: &memAvailabilityConfigRepo{},
		Booking:            bookings,
	}, bookings
}

// Payment fakes.

type stubVerifier struct {
	event *payment.Event
	err   error
}

func (v *stubVerifier) Verify(payload []byte, signature string) (*payment.Event, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.event, nil
}

type stubCheckout struct {
	session *payment.Session
	err     error
	last    payment.CheckoutParams
}

func (c *stubCheckout) CreateSession(ctx context.Context, params payment.CheckoutParams) (*payment.Session, error) {
	c.last = params
	if c.err != nil {
		return nil, c.err
	}
	return c.session, nil
}

// recordingNotifier captures confirmation mails and can be told to fail.

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (n *recordingNotifier) SendBookingConfirmation(name, email string, checkIn, checkOut time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, email)
	return nil
}

func date(s string) time.Time {
	d, err := utils.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
