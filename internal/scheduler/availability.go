package scheduler

import (
	"github.com/clinichq/clinic-scheduler/internal/clinic"
	"github.com/clinichq/clinic-scheduler/internal/collection"
)

// Availability predicates are pure reads over the current appointment
// collection. Each answers "is this slot already taken" for one kind of
// resource; the scheduling operations compose them before committing.

// PatientHasConflict reports whether the patient already holds any
// appointment at the date and timeslot, with any provider.
func PatientHasConflict(appts *collection.List[*clinic.Appointment], patient clinic.Profile, date clinic.Date, slot clinic.Timeslot) bool {
	for _, a := range appts.Items() {
		if a.Patient.Equal(patient) && a.Date.Equal(date) && a.Slot.Equal(slot) {
			return true
		}
	}
	return false
}

// DoctorUnavailable reports whether the doctor with the given NPI is
// already committed at the date and timeslot.
func DoctorUnavailable(appts *collection.List[*clinic.Appointment], npi string, date clinic.Date, slot clinic.Timeslot) bool {
	for _, a := range appts.Items() {
		doctor, ok := a.Provider.(*clinic.Doctor)
		if ok && doctor.NPI() == npi && a.Date.Equal(date) && a.Slot.Equal(slot) {
			return true
		}
	}
	return false
}

// TechnicianUnavailable reports whether any technician is committed at
// the date and timeslot. It is the coarse pre-check used when a
// rescheduled imaging appointment keeps its technician.
func TechnicianUnavailable(appts *collection.List[*clinic.Appointment], date clinic.Date, slot clinic.Timeslot) bool {
	for _, a := range appts.Items() {
		if _, ok := a.Provider.(*clinic.Technician); ok && a.Date.Equal(date) && a.Slot.Equal(slot) {
			return true
		}
	}
	return false
}

// TechnicianBusy reports whether the given technician holds any
// appointment at the date and timeslot, regardless of room.
func TechnicianBusy(appts *collection.List[*clinic.Appointment], tech *clinic.Technician, date clinic.Date, slot clinic.Timeslot) bool {
	for _, a := range appts.Items() {
		if clinic.ProviderEqual(a.Provider, tech) && a.Date.Equal(date) && a.Slot.Equal(slot) {
			return true
		}
	}
	return false
}

// RoomUnavailable reports whether an imaging appointment already occupies
// the given room at the date and timeslot at a provider in the given
// location. Rooms are per clinic site, not global.
func RoomUnavailable(appts *collection.List[*clinic.Appointment], room clinic.Radiology, location clinic.Location, date clinic.Date, slot clinic.Timeslot) bool {
	for _, a := range appts.Items() {
		if !a.IsImaging() || *a.Room != room {
			continue
		}
		if a.Date.Equal(date) && a.Slot.Equal(slot) && a.Provider.Location() == location {
			return true
		}
	}
	return false
}

// FindAppointment returns the appointment held by the patient at the
// date and timeslot, or nil.
func FindAppointment(appts *collection.List[*clinic.Appointment], patient clinic.Profile, date clinic.Date, slot clinic.Timeslot) *clinic.Appointment {
	for _, a := range appts.Items() {
		if a.Patient.Equal(patient) && a.Date.Equal(date) && a.Slot.Equal(slot) {
			return a
		}
	}
	return nil
}
