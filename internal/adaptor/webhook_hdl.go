package adaptor

import (
	"errors"
	"io"
	"net/http"

	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/response"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/payment"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

// maxWebhookBody bounds how much of the provider's payload is read.
const maxWebhookBody = 1 << 16

type WebhookHandler struct {
	service usecase.ConfirmationService
	log     *zap.Logger
}

func NewWebhookHandler(service usecase.ConfirmationService, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		log:     log.With(zap.String("handler", "webhook")),
	}
}

// HandleStripeWebhook handles POST /api/payments/webhook.
// Only a bad signature returns an error status; the provider treats that as
// failed delivery and retries. Overlap gets a conflict, everything else a
// success acknowledgement.
func (h *WebhookHandler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.ResponseBadRequest(w, "Could not read request body", nil)
		return
	}

	signature := r.Header.Get("Stripe-Signature")

	booking, err := h.service.HandleEvent(r.Context(), payload, signature)
	switch {
	case err == nil:
		if booking != nil {
			resp := response.BookingToResponse(booking)
			utils.ResponseSuccess(w, "success", resp)
			return
		}
		utils.ResponseSuccess(w, "success", nil)

	case errors.Is(err, payment.ErrInvalidSignature):
		utils.ResponseBadRequest(w, "Invalid signature", nil)

	case errors.Is(err, repository.ErrDatesAlreadyBooked):
		utils.ResponseConflict(w, "Dates already booked")

	default:
		h.log.Error("Failed to process payment event", zap.Error(err))
		utils.ResponseInternalError(w, "Booking creation failed")
	}
}
