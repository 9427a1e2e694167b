package repository

import (
	"context"
	"fmt"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AvailabilityConfigRepository interface {
	// Get returns nil when no config row exists yet; callers fall back to
	// the default booking window.
	Get(ctx context.Context) (*entity.AvailabilityConfig, error)
	SetMonthsAhead(ctx context.Context, months int) error
}

type availabilityConfigRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityConfigRepository(db database.PgxIface, log *zap.Logger) AvailabilityConfigRepository {
	return &availabilityConfigRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability_config")),
	}
}

func (r *availabilityConfigRepository) Get(ctx context.Context) (*entity.AvailabilityConfig, error) {
	query := `SELECT id, months_ahead, updated_at FROM availability_config WHERE id = 1`

	var config entity.AvailabilityConfig
	err := r.db.QueryRow(ctx, query).Scan(
		&config.ID,
		&config.MonthsAhead,
		&config.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get availability config", zap.Error(err))
		return nil, fmt.Errorf("get availability config: %w", err)
	}

	return &config, nil
}

func (r *availabilityConfigRepository) SetMonthsAhead(ctx context.Context, months int) error {
	// Single-row table: id is always 1
	query := `
		INSERT INTO availability_config (id, months_ahead, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET months_ahead = EXCLUDED.months_ahead, updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, months)
	if err != nil {
		r.log.Error("Failed to set booking window",
			zap.Error(err),
			zap.Int("months_ahead", months),
		)
		return fmt.Errorf("set booking window: %w", err)
	}

	r.log.Info("Booking window updated", zap.Int("months_ahead", months))
	return nil
}
