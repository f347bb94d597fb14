package booking

import "errors"

// Domain errors surfaced to controllers. Anything else coming out of the
// service is a storage failure and passes through untouched.
var (
	ErrInvalidInput    = errors.New("invalid booking payload")
	ErrInvalidAmount   = errors.New("invalid monetary amount")
	ErrTripNotFound    = errors.New("trip not found")
	ErrBookingNotFound = errors.New("booking not found")
)
