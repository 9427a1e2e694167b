package response

type BaseRateResponse struct {
	BaseRate string `json:"base_rate"`
}

type DashboardResponse struct {
	BaseRate         string            `json:"base_rate"`
	UpcomingBookings []BookingResponse `json:"upcoming_bookings"`
}
