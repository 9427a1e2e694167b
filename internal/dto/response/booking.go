package response

import (
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/utils"
)

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	TotalPrice  string `json:"total_price"`
	Nights      int    `json:"nights"`
}

type BookingResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	TotalPrice string    `json:"total_price"`
	Paid       bool      `json:"paid"`
	CreatedAt  time.Time `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID.String(),
		Name:       b.Name,
		Email:      b.Email,
		CheckIn:    utils.FormatDate(b.CheckIn),
		CheckOut:   utils.FormatDate(b.CheckOut),
		TotalPrice: b.TotalPrice.StringFixed(2),
		Paid:       b.Paid,
		CreatedAt:  b.CreatedAt,
	}
}
