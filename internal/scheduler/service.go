// Package scheduler implements the scheduling engine: availability
// checks, the technician rotation, the four scheduling operations, and
// the reporting views derived from the appointment collection.
package scheduler

import (
	"fmt"
	"sync"

	"github.com/clinichq/clinic-scheduler/internal/clinic"
	"github.com/clinichq/clinic-scheduler/internal/collection"
	"github.com/clinichq/clinic-scheduler/pkg/logging"
)

// Service owns the appointment collection and runs the scheduling
// operations against it. Every operation is a guarded sequence: all
// checks run before the single committing insert or remove, so a failed
// operation leaves no partial state.
//
// One mutex serializes every operation and report view. The report
// sorts rearrange the collection in place, so the views take the same
// exclusive lock the mutations do; handlers may call into the service
// from concurrent requests.
type Service struct {
	mu           sync.Mutex
	appointments *collection.List[*clinic.Appointment]
	providers    *collection.List[clinic.Provider]
	ring         *Ring
	logger       *logging.Logger
	metrics      *Metrics
}

// NewService constructs a scheduling service over the loaded providers
// and technician rotation.
func NewService(providers *collection.List[clinic.Provider], ring *Ring, logger *logging.Logger, metrics *Metrics) *Service {
	if providers == nil {
		panic("scheduler: provider list required")
	}
	if ring == nil {
		ring = NewRing(nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		appointments: collection.New(func(a, b *clinic.Appointment) bool { return a.Equal(b) }),
		providers:    providers,
		ring:         ring,
		logger:       logger,
		metrics:      metrics,
	}
}

// Appointments returns the live appointment collection. The collection
// is not synchronized on its own; callers touching it while the service
// is handling requests race with the operations.
func (s *Service) Appointments() *collection.List[*clinic.Appointment] {
	return s.appointments
}

// Providers returns the loaded provider collection. The same caveat as
// Appointments applies.
func (s *Service) Providers() *collection.List[clinic.Provider] {
	return s.providers
}

// Ring returns the technician rotation.
func (s *Service) Ring() *Ring {
	return s.ring
}

// ScheduleOffice books an office visit with the doctor holding the given
// NPI.
func (s *Service) ScheduleOffice(npi string, date clinic.Date, slot clinic.Timeslot, patient clinic.Profile) (*clinic.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctor := s.doctorByNPI(npi)
	if doctor == nil {
		s.metrics.ObserveOperation("office", "provider_not_found")
		return nil, fmt.Errorf("%w: no doctor with NPI %s", ErrProviderNotFound, npi)
	}
	if PatientHasConflict(s.appointments, patient, date, slot) {
		s.metrics.ObserveOperation("office", "duplicate")
		return nil, fmt.Errorf("%w: %s has an existing appointment at the same time slot", ErrDuplicateBooking, patient)
	}
	if DoctorUnavailable(s.appointments, npi, date, slot) {
		s.metrics.ObserveOperation("office", "provider_busy")
		return nil, fmt.Errorf("%w: %s is not available at %s", ErrProviderBusy, doctor, slot)
	}

	appt := clinic.NewAppointment(date, slot, patient, doctor)
	s.appointments.Add(appt)
	s.metrics.ObserveOperation("office", "booked")
	s.logger.Info("office visit booked",
		"patient", patient.String(),
		"npi", npi,
		"date", date.String(),
		"slot", slot.String(),
	)
	return appt, nil
}

// ScheduleImaging books an imaging visit in the given room, assigning a
// technician from the rotation.
func (s *Service) ScheduleImaging(room clinic.Radiology, date clinic.Date, slot clinic.Timeslot, patient clinic.Profile) (*clinic.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if PatientHasConflict(s.appointments, patient, date, slot) {
		s.metrics.ObserveOperation("imaging", "duplicate")
		return nil, fmt.Errorf("%w: %s has an existing appointment at the same time slot", ErrDuplicateBooking, patient)
	}

	tech, ok := s.ring.Assign(func(t *clinic.Technician) bool {
		return !TechnicianBusy(s.appointments, t, date, slot) &&
			!RoomUnavailable(s.appointments, room, t.Location(), date, slot)
	})
	if !ok {
		s.metrics.ObserveOperation("imaging", "no_technician")
		return nil, fmt.Errorf("%w: cannot find an available technician at all locations for %s at %s", ErrNoTechnicianAvailable, room, slot)
	}

	appt := clinic.NewImaging(date, slot, patient, tech, room)
	s.appointments.Add(appt)
	s.metrics.ObserveOperation("imaging", "booked")
	s.logger.Info("imaging visit booked",
		"patient", patient.String(),
		"technician", tech.Profile().String(),
		"room", room.String(),
		"date", date.String(),
		"slot", slot.String(),
	)
	return appt, nil
}

// Cancel removes the patient's appointment at the date and timeslot.
func (s *Service) Cancel(date clinic.Date, slot clinic.Timeslot, patient clinic.Profile) (*clinic.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt := FindAppointment(s.appointments, patient, date, slot)
	if appt == nil {
		s.metrics.ObserveOperation("cancel", "not_found")
		return nil, fmt.Errorf("%w: %s %s %s - appointment does not exist", ErrAppointmentNotFound, date, slot, patient)
	}
	s.appointments.Remove(appt)
	s.metrics.ObserveOperation("cancel", "cancelled")
	s.logger.Info("appointment cancelled",
		"patient", patient.String(),
		"date", date.String(),
		"slot", slot.String(),
	)
	return appt, nil
}

// Reschedule moves the patient's appointment on the same date to a new
// timeslot, keeping the provider (and, for imaging, the room). The
// technician rotation is not consulted. On any failed check the original
// appointment is untouched.
func (s *Service) Reschedule(date clinic.Date, oldSlot clinic.Timeslot, patient clinic.Profile, newSlot clinic.Timeslot) (*clinic.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := FindAppointment(s.appointments, patient, date, oldSlot)
	if existing == nil {
		s.metrics.ObserveOperation("reschedule", "not_found")
		return nil, fmt.Errorf("%w: %s %s %s - appointment does not exist", ErrAppointmentNotFound, date, oldSlot, patient)
	}

	switch provider := existing.Provider.(type) {
	case *clinic.Doctor:
		if PatientHasConflict(s.appointments, patient, date, newSlot) {
			s.metrics.ObserveOperation("reschedule", "duplicate")
			return nil, fmt.Errorf("%w: %s has an existing appointment at the same time slot", ErrDuplicateBooking, patient)
		}
		if DoctorUnavailable(s.appointments, provider.NPI(), date, newSlot) {
			s.metrics.ObserveOperation("reschedule", "provider_busy")
			return nil, fmt.Errorf("%w: %s is not available at %s", ErrProviderBusy, provider, newSlot)
		}
	case *clinic.Technician:
		if PatientHasConflict(s.appointments, patient, date, newSlot) {
			s.metrics.ObserveOperation("reschedule", "duplicate")
			return nil, fmt.Errorf("%w: %s has an existing appointment at the same time slot", ErrDuplicateBooking, patient)
		}
		if TechnicianUnavailable(s.appointments, date, newSlot) {
			s.metrics.ObserveOperation("reschedule", "provider_busy")
			return nil, fmt.Errorf("%w: %s is not available at %s", ErrProviderBusy, provider, newSlot)
		}
	}

	var replacement *clinic.Appointment
	if existing.IsImaging() {
		replacement = clinic.NewImaging(date, newSlot, patient, existing.Provider, *existing.Room)
	} else {
		replacement = clinic.NewAppointment(date, newSlot, patient, existing.Provider)
	}

	s.appointments.Remove(existing)
	s.appointments.Add(replacement)
	s.metrics.ObserveOperation("reschedule", "rescheduled")
	s.logger.Info("appointment rescheduled",
		"patient", patient.String(),
		"date", date.String(),
		"old_slot", oldSlot.String(),
		"new_slot", newSlot.String(),
	)
	return replacement, nil
}

func (s *Service) doctorByNPI(npi string) *clinic.Doctor {
	for _, p := range s.providers.Items() {
		if doctor, ok := p.(*clinic.Doctor); ok && doctor.NPI() == npi {
			return doctor
		}
	}
	return nil
}
