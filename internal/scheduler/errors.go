package scheduler

import "errors"

var (
	// ErrProviderNotFound is returned when an NPI does not resolve to a
	// known doctor
	ErrProviderNotFound = errors.New("provider not found")

	// ErrDuplicateBooking is returned when the patient already holds an
	// appointment at the requested date and timeslot
	ErrDuplicateBooking = errors.New("duplicate booking")

	// ErrProviderBusy is returned when the requested provider is already
	// committed at the requested date and timeslot
	ErrProviderBusy = errors.New("provider busy")

	// ErrNoTechnicianAvailable is returned when a full rotation found no
	// free technician and room combination
	ErrNoTechnicianAvailable = errors.New("no technician available")

	// ErrAppointmentNotFound is returned when a cancel or reschedule
	// target does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")
)
