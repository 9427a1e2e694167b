package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// defaultBaseRate masks an absent pricing config; no config row is not an
// error condition.
var defaultBaseRate = decimal.NewFromInt(150)

type PricingService interface {
	// CalculateTotalPrice sums the nightly price for each date in
	// [checkIn, checkOut). Zero nights means total zero. Pure read side,
	// no side effects.
	CalculateTotalPrice(ctx context.Context, checkIn, checkOut time.Time) (decimal.Decimal, error)

	// NightlyRates resolves the price of every date in [from, to] inclusive.
	NightlyRates(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error)

	GetBaseRate(ctx context.Context) (decimal.Decimal, error)

	// Owner mutations
	SetBaseRate(ctx context.Context, req *request.SetBaseRateRequest) error
	UpsertOverride(ctx context.Context, req *request.UpsertOverrideRequest) error
}

type pricingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPricingService(repo *repository.Repository, log *zap.Logger) PricingService {
	return &pricingService{
		repo: repo,
		log:  log.With(zap.String("service", "pricing")),
	}
}

func (s *pricingService) GetBaseRate(ctx context.Context) (decimal.Decimal, error) {
	config, err := s.repo.PricingConfig.Get(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get base rate: %w", err)
	}
	if config == nil {
		return defaultBaseRate, nil
	}
	return config.BaseRate, nil
}

func (s *pricingService) CalculateTotalPrice(ctx context.Context, checkIn, checkOut time.Time) (decimal.Decimal, error) {
	if checkOut.Before(checkIn) {
		return decimal.Zero, ErrInvalidDates
	}
	if checkOut.Equal(checkIn) {
		return decimal.Zero, nil
	}

	baseRate, err := s.GetBaseRate(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	overrides, err := s.overridesByDate(ctx, checkIn, checkOut)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for date := checkIn; date.Before(checkOut); date = date.AddDate(0, 0, 1) {
		if rate, ok := overrides[utils.FormatDate(date)]; ok {
			total = total.Add(rate)
		} else {
			total = total.Add(baseRate)
		}
	}

	return total, nil
}

func (s *pricingService) NightlyRates(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	baseRate, err := s.GetBaseRate(ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := s.overridesByDate(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal)
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		key := utils.FormatDate(date)
		if rate, ok := overrides[key]; ok {
			rates[key] = rate
		} else {
			rates[key] = baseRate
		}
	}

	return rates, nil
}

func (s *pricingService) SetBaseRate(ctx context.Context, req *request.SetBaseRateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set base rate validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rate, err := decimal.NewFromString(req.BaseRate)
	if err != nil {
		return fmt.Errorf("invalid base rate %q", req.BaseRate)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("invalid base rate %s: must be positive", rate.String())
	}

	if err := s.repo.PricingConfig.SetBaseRate(ctx, rate); err != nil {
		s.log.Error("Failed to set base rate", zap.Error(err))
		return fmt.Errorf("set base rate: %w", err)
	}

	return nil
}

func (s *pricingService) UpsertOverride(ctx context.Context, req *request.UpsertOverrideRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert override validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return err
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		return fmt.Errorf("invalid rate %q", req.Rate)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("invalid rate %s: must be positive", rate.String())
	}

	if err := s.repo.PricingRule.Upsert(ctx, date, rate); err != nil {
		s.log.Error("Failed to upsert override",
			zap.Error(err),
			zap.String("date", req.Date),
		)
		return fmt.Errorf("upsert override: %w", err)
	}

	return nil
}

func (s *pricingService) overridesByDate(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	rules, err := s.repo.PricingRule.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load pricing overrides: %w", err)
	}

	overrides := make(map[string]decimal.Decimal, len(rules))
	for _, rule := range rules {
		overrides[utils.FormatDate(rule.Date)] = rule.Rate
	}
	return overrides, nil
}
