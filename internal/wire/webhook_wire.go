package wire

import (
	"rental-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWebhook(r chi.Router, webhookHandler *adaptor.WebhookHandler) {
	// POST /api/payments/webhook - payment provider callback (signed)
	r.Post("/api/payments/webhook", webhookHandler.HandleStripeWebhook)
}
