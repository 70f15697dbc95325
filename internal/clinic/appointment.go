package clinic

import "fmt"

// Appointment is one booked slot. Room is set only on imaging
// appointments; office visits leave it nil.
//
// Equality deliberately ignores the provider and room: two appointments
// are "the same slot" when the patient, date, and timeslot match. That
// is what makes double-booking detection provider-agnostic.
type Appointment struct {
	Date     Date
	Slot     Timeslot
	Patient  Profile
	Provider Provider
	Room     *Radiology
}

// NewAppointment builds an office-visit appointment.
func NewAppointment(date Date, slot Timeslot, patient Profile, provider Provider) *Appointment {
	return &Appointment{Date: date, Slot: slot, Patient: patient, Provider: provider}
}

// NewImaging builds an imaging appointment in the given radiology room.
func NewImaging(date Date, slot Timeslot, patient Profile, provider Provider, room Radiology) *Appointment {
	return &Appointment{Date: date, Slot: slot, Patient: patient, Provider: provider, Room: &room}
}

// IsImaging reports whether the appointment occupies a radiology room.
func (a *Appointment) IsImaging() bool {
	return a.Room != nil
}

// Equal reports whether two appointments occupy the same slot for the
// same patient, regardless of provider or room.
func (a *Appointment) Equal(other *Appointment) bool {
	return a.Date.Equal(other.Date) &&
		a.Slot.Equal(other.Slot) &&
		a.Patient.Equal(other.Patient)
}

// Compare orders appointments by date alone. The report views use the
// richer orderings in sort.go instead.
func (a *Appointment) Compare(other *Appointment) int {
	return a.Date.Compare(other.Date)
}

// String renders the appointment the way the schedule views display it.
func (a *Appointment) String() string {
	s := fmt.Sprintf("%s %s %s %s", a.Date, a.Slot, a.Patient, a.Provider)
	if a.Room != nil {
		s += fmt.Sprintf("[%s]", *a.Room)
	}
	return s
}
