package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type stubConfirmationService struct {
	booking   *entity.Booking
	err       error
	signature string
}

func (s *stubConfirmationService) HandleEvent(_ context.Context, _ []byte, signature string) (*entity.Booking, error) {
	s.signature = signature
	return s.booking, s.err
}

func postWebhook(t *testing.T, service *stubConfirmationService, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewWebhookHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()

	handler.HandleStripeWebhook(rec, req)
	return rec
}

func TestHandleStripeWebhookConfirmed(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	service := &stubConfirmationService{
		booking: &entity.Booking{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:       "Alice",
			Email:      "alice@example.com",
			CheckIn:    checkIn,
			CheckOut:   checkIn.AddDate(0, 0, 3),
			TotalPrice: decimal.NewFromInt(450),
			Paid:       true,
		},
	}

	rec := postWebhook(t, service, `{"type":"checkout.session.completed"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if service.signature != "t=1,v1=abc" {
		t.Errorf("signature header not forwarded, got %q", service.signature)
	}

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Email      string `json:"email"`
			TotalPrice string `json:"total_price"`
			Paid       bool   `json:"paid"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Status {
		t.Error("expected status true in response envelope")
	}
	if body.Data.Email != "alice@example.com" || !body.Data.Paid {
		t.Errorf("unexpected booking payload: %+v", body.Data)
	}
	if body.Data.TotalPrice != "450.00" {
		t.Errorf("expected total_price 450.00, got %q", body.Data.TotalPrice)
	}
}

func TestHandleStripeWebhookAcknowledgesNoOp(t *testing.T) {
	rec := postWebhook(t, &stubConfirmationService{}, `{"type":"payment_intent.created"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for acknowledged no-op, got %d", rec.Code)
	}
}

func TestHandleStripeWebhookInvalidSignature(t *testing.T) {
	service := &stubConfirmationService{
		err: fmt.Errorf("%w: bad digest", payment.ErrInvalidSignature),
	}

	rec := postWebhook(t, service, `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid signature, got %d", rec.Code)
	}
}

func TestHandleStripeWebhookConflict(t *testing.T) {
	service := &stubConfirmationService{err: repository.ErrDatesAlreadyBooked}

	rec := postWebhook(t, service, `{}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for overlapping dates, got %d", rec.Code)
	}
}

func TestHandleStripeWebhookPersistenceFailure(t *testing.T) {
	service := &stubConfirmationService{err: fmt.Errorf("confirm booking: connection refused")}

	rec := postWebhook(t, service, `{}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for persistence failure, got %d", rec.Code)
	}
}
