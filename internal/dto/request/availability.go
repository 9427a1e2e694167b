package request

type SetBookingWindowRequest struct {
	MonthsAhead int `json:"months_ahead" validate:"required,gte=1,lte=24"`
}
