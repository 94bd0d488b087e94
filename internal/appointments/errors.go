package appointments

import "errors"

var (
	// ErrMissingName is returned when the booking has no name.
	ErrMissingName = errors.New("name is required")

	// ErrMissingNumber is returned when the booking has no contact number.
	ErrMissingNumber = errors.New("phone number is required")

	// ErrMissingDate is returned when the booking has no date.
	ErrMissingDate = errors.New("appointment date is required")

	// ErrNoServices is returned when the booking selects no services.
	ErrNoServices = errors.New("at least one service is required")
)
