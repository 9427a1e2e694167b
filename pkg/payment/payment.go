package payment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// EventCheckoutCompleted is the only event kind that creates a booking.
// Every other kind is acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

var ErrInvalidSignature = errors.New("invalid event signature")

// Event is a verified payment-provider callback.
type Event struct {
	Type     string
	Metadata map[string]string
}

// EventVerifier authenticates an inbound webhook body against the provider's
// signature scheme.
type EventVerifier interface {
	Verify(payload []byte, signature string) (*Event, error)
}

// CheckoutParams carries the quoted booking into the provider's session.
type CheckoutParams struct {
	GuestName  string
	GuestEmail string
	CheckIn    time.Time
	CheckOut   time.Time
	Total      decimal.Decimal
}

// Session is the opaque handoff guests are redirected to.
type Session struct {
	ID  string
	URL string
}

// CheckoutProvider creates payment sessions at the external provider.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params CheckoutParams) (*Session, error)
}
