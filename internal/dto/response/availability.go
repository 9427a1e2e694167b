package response

// CalendarDay is one entry of the availability feed: a date is either booked
// or carries its nightly price.
type CalendarDay struct {
	Date   string `json:"date"`
	Booked bool   `json:"booked"`
	Price  string `json:"price,omitempty"`
}

type BookingWindowResponse struct {
	MonthsAhead     int    `json:"months_ahead"`
	MaxBookableDate string `json:"max_bookable_date"`
}
