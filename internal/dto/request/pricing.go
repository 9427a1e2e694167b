package request

// Rates travel as strings so decimal values survive JSON intact.

type SetBaseRateRequest struct {
	BaseRate string `json:"base_rate" validate:"required"`
}

type UpsertOverrideRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Rate string `json:"rate" validate:"required"`
}
