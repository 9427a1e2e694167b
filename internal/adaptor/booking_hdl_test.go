package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/internal/usecase"

	"go.uber.org/zap"
)

type stubBookingService struct {
	checkout *response.CheckoutResponse
	err      error
	last     *request.CreateBookingRequest
}

func (s *stubBookingService) CreateCheckoutSession(_ context.Context, req *request.CreateBookingRequest) (*response.CheckoutResponse, error) {
	s.last = req
	return s.checkout, s.err
}

func (s *stubBookingService) GetUpcomingBookings(context.Context, time.Time) ([]response.BookingResponse, error) {
	return nil, nil
}

func postBooking(t *testing.T, service *stubBookingService, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewBookingHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)
	return rec
}

const validIntakeBody = `{"name":"Alice","email":"alice@example.com","check_in":"2026-09-01","check_out":"2026-09-04"}`

func TestCreateBookingReturnsCheckoutURL(t *testing.T) {
	service := &stubBookingService{
		checkout: &response.CheckoutResponse{
			CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test_123",
			TotalPrice:  "450.00",
			Nights:      3,
		},
	}

	rec := postBooking(t, service, validIntakeBody)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if service.last == nil || service.last.Email != "alice@example.com" {
		t.Fatalf("request not forwarded to service: %+v", service.last)
	}

	var body struct {
		Data response.CheckoutResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.CheckoutURL != service.checkout.CheckoutURL {
		t.Errorf("expected checkout URL in payload, got %q", body.Data.CheckoutURL)
	}
	if body.Data.TotalPrice != "450.00" || body.Data.Nights != 3 {
		t.Errorf("unexpected quote payload: %+v", body.Data)
	}
}

func TestCreateBookingRejectsMalformedBody(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"name":`,
		"missing name":   `{"email":"alice@example.com","check_in":"2026-09-01","check_out":"2026-09-04"}`,
		"bad email":      `{"name":"Alice","email":"not-an-email","check_in":"2026-09-01","check_out":"2026-09-04"}`,
		"bad date shape": `{"name":"Alice","email":"alice@example.com","check_in":"01/09/2026","check_out":"2026-09-04"}`,
	}

	for name, body := range cases {
		service := &stubBookingService{}
		rec := postBooking(t, service, body)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
		if service.last != nil {
			t.Errorf("%s: malformed request must not reach the service", name)
		}
	}
}

func TestCreateBookingMapsServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"inverted dates", usecase.ErrInvalidDates, http.StatusBadRequest},
		{"past check-in", usecase.ErrPastCheckIn, http.StatusBadRequest},
		{"outside window", usecase.ErrOutsideWindow, http.StatusBadRequest},
		{"overlap", repository.ErrDatesAlreadyBooked, http.StatusConflict},
		{"provider down", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := postBooking(t, &stubBookingService{err: tc.err}, validIntakeBody)

		if rec.Code != tc.code {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.code, rec.Code)
		}
	}
}
