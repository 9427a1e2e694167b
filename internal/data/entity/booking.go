package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is only ever written at confirmation time, already paid.
// [CheckIn, CheckOut) is half-open: CheckOut does not consume a night.
type Booking struct {
	BaseSimple
	Name       string          `db:"name"`
	Email      string          `db:"email"`
	CheckIn    time.Time       `db:"check_in"`
	CheckOut   time.Time       `db:"check_out"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Paid       bool            `db:"paid"`
}

func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Covers reports whether the stay occupies the night starting on date d.
func (b *Booking) Covers(d time.Time) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}
