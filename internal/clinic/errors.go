package clinic

import "errors"

var (
	// ErrInvalidDate is returned for malformed or calendar-impossible dates
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownToken is returned when a location, specialty, or radiology
	// token does not match any known value
	ErrUnknownToken = errors.New("unknown token")

	// ErrInvalidTimeslot is returned when a timeslot selection does not
	// match one of the twelve bookable slots
	ErrInvalidTimeslot = errors.New("invalid timeslot")
)
