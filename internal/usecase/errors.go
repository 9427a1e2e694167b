package usecase

import "errors"

// User-correctable intake violations. The handler reports the first one hit.
var (
	ErrInvalidDates  = errors.New("check-out date must be after check-in date")
	ErrPastCheckIn   = errors.New("check-in date cannot be in the past")
	ErrOutsideWindow = errors.New("dates are too far in the future")
)
