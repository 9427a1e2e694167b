package repository

import (
	"context"
	"fmt"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PricingConfigRepository interface {
	// Get returns nil when no config row exists yet; callers fall back to
	// the default base rate.
	Get(ctx context.Context) (*entity.PricingConfig, error)
	SetBaseRate(ctx context.Context, rate decimal.Decimal) error
}

type pricingConfigRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPricingConfigRepository(db database.PgxIface, log *zap.Logger) PricingConfigRepository {
	return &pricingConfigRepository{
		db:  db,
		log: log.With(zap.String("repository", "pricing_config")),
	}
}

func (r *pricingConfigRepository) Get(ctx context.Context) (*entity.PricingConfig, error) {
	query := `SELECT id, base_rate, updated_at FROM pricing_config WHERE id = 1`

	var config entity.PricingConfig
	err := r.db.QueryRow(ctx, query).Scan(
		&config.ID,
		&config.BaseRate,
		&config.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get pricing config", zap.Error(err))
		return nil, fmt.Errorf("get pricing config: %w", err)
	}

	return &config, nil
}

func (r *pricingConfigRepository) SetBaseRate(ctx context.Context, rate decimal.Decimal) error {
	// Single-row table: id is always 1
	query := `
		INSERT INTO pricing_config (id, base_rate, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET base_rate = EXCLUDED.base_rate, updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, rate)
	if err != nil {
		r.log.Error("Failed to set base rate",
			zap.Error(err),
			zap.String("base_rate", rate.String()),
		)
		return fmt.Errorf("set base rate: %w", err)
	}

	r.log.Info("Base rate updated", zap.String("base_rate", rate.String()))
	return nil
}
