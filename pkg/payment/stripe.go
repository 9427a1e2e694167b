package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"rental-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

var cents = decimal.NewFromInt(100)

// StripeGateway implements EventVerifier and CheckoutProvider on Stripe.
type StripeGateway struct {
	cfg utils.StripeConfig
	log *zap.Logger
}

func NewStripeGateway(cfg utils.StripeConfig, log *zap.Logger) *StripeGateway {
	stripe.Key = cfg.SecretKey
	return &StripeGateway{
		cfg: cfg,
		log: log.With(zap.String("gateway", "stripe")),
	}
}

// Verify checks the Stripe-Signature header against the endpoint secret.
// A forged signature and a malformed body are rejected the same way.
func (g *StripeGateway) Verify(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.cfg.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var object struct {
		Metadata map[string]string `json:"metadata"`
	}
	if event.Data != nil && len(event.Data.Raw) > 0 {
		if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
	}

	return &Event{
		Type:     string(event.Type),
		Metadata: object.Metadata,
	}, nil
}

// CreateSession opens a Stripe Checkout session for the quoted stay. The
// booking itself is only written once the completion event comes back.
func (g *StripeGateway) CreateSession(ctx context.Context, p CheckoutParams) (*Session, error) {
	// Stripe expects cents as integers
	amount := p.Total.Mul(cents).IntPart()

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Booking for %s", p.GuestName)),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.cfg.SuccessURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("name", p.GuestName)
	params.AddMetadata("email", p.GuestEmail)
	params.AddMetadata("check_in", utils.FormatDate(p.CheckIn))
	params.AddMetadata("check_out", utils.FormatDate(p.CheckOut))
	params.AddMetadata("total_price", p.Total.StringFixed(2))

	sess, err := session.New(params)
	if err != nil {
		g.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.String("email", p.GuestEmail),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	g.log.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("check_in", utils.FormatDate(p.CheckIn)),
		zap.String("check_out", utils.FormatDate(p.CheckOut)),
		zap.String("total_price", p.Total.StringFixed(2)),
	)

	return &Session{ID: sess.ID, URL: sess.URL}, nil
}
