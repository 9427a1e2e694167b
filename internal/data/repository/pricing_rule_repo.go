package repository

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PricingRuleRepository interface {
	FindByDate(ctx context.Context, date time.Time) (*entity.PricingRule, error)
	// FindByDateRange returns rules for dates in [from, to).
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.PricingRule, error)
	Upsert(ctx context.Context, date time.Time, rate decimal.Decimal) error
}

type pricingRuleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPricingRuleRepository(db database.PgxIface, log *zap.Logger) PricingRuleRepository {
	return &pricingRuleRepository{
		db:  db,
		log: log.With(zap.String("repository", "pricing_rule")),
	}
}

func (r *pricingRuleRepository) FindByDate(ctx context.Context, date time.Time) (*entity.PricingRule, error) {
	query := `SELECT id, date, rate, created_at FROM pricing_rules WHERE date = $1`

	var rule entity.PricingRule
	err := r.db.QueryRow(ctx, query, date).Scan(
		&rule.ID,
		&rule.Date,
		&rule.Rate,
		&rule.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find pricing rule",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find pricing rule for %s: %w", date.Format("2006-01-02"), err)
	}

	return &rule, nil
}

func (r *pricingRuleRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.PricingRule, error) {
	query := `
		SELECT id, date, rate, created_at
		FROM pricing_rules
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find pricing rules by range",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find pricing rules in range: %w", err)
	}
	defer rows.Close()

	var rules []*entity.PricingRule
	for rows.Next() {
		var rule entity.PricingRule
		err := rows.Scan(
			&rule.ID,
			&rule.Date,
			&rule.Rate,
			&rule.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan pricing rule row", zap.Error(err))
			return nil, fmt.Errorf("scan pricing rule row: %w", err)
		}
		rules = append(rules, &rule)
	}

	return rules, nil
}

func (r *pricingRuleRepository) Upsert(ctx context.Context, date time.Time, rate decimal.Decimal) error {
	// One rule per calendar date
	query := `
		INSERT INTO pricing_rules (id, date, rate, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (date) DO UPDATE SET rate = EXCLUDED.rate
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), date, rate)
	if err != nil {
		r.log.Error("Failed to upsert pricing rule",
			zap.Error(err),
			zap.Time("date", date),
			zap.String("rate", rate.String()),
		)
		return fmt.Errorf("upsert pricing rule for %s: %w", date.Format("2006-01-02"), err)
	}

	r.log.Info("Pricing rule upserted",
		zap.Time("date", date),
		zap.String("rate", rate.String()),
	)
	return nil
}
