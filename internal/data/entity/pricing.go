package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingConfig is a single-row table (id is always 1).
type PricingConfig struct {
	ID        int             `db:"id"`
	BaseRate  decimal.Decimal `db:"base_rate"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// PricingRule overrides the base rate for one calendar date. One rule per date.
type PricingRule struct {
	BaseSimple
	Date time.Time       `db:"date"`
	Rate decimal.Decimal `db:"rate"`
}
