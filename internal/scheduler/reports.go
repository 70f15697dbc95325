package scheduler

import (
	"fmt"

	"github.com/clinichq/clinic-scheduler/internal/clinic"
	"github.com/clinichq/clinic-scheduler/internal/collection"
)

// EmptyCalendar is the single line rendered when a schedule view has no
// appointments to show.
const EmptyCalendar = "Schedule calendar is empty."

// The views sort the shared collection in place before rendering, so
// each one holds the service mutex for its whole run.

// AppointmentsByDate renders all appointments ordered by date, timeslot,
// then provider.
func (s *Service) AppointmentsByDate() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	clinic.SortByDate(s.appointments)
	return s.renderAll()
}

// AppointmentsByPatient renders all appointments in patient order.
func (s *Service) AppointmentsByPatient() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	clinic.SortByPatient(s.appointments)
	return s.renderAll()
}

// AppointmentsByLocation renders all appointments ordered by the
// provider's county, then date and timeslot.
func (s *Service) AppointmentsByLocation() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	clinic.SortByLocation(s.appointments)
	return s.renderAll()
}

// OfficeAppointments renders office visits only, in location order.
func (s *Service) OfficeAppointments() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	clinic.SortByLocation(s.appointments)
	return s.renderFiltered(func(a *clinic.Appointment) bool { return !a.IsImaging() })
}

// ImagingAppointments renders imaging visits only, in location order.
func (s *Service) ImagingAppointments() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	clinic.SortByLocation(s.appointments)
	return s.renderFiltered(func(a *clinic.Appointment) bool { return a.IsImaging() })
}

// ProviderList renders the provider roster in provider order, one line
// per provider.
func (s *Service) ProviderList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	clinic.SortProviders(s.providers)
	lines := make([]string, 0, s.providers.Size())
	for _, p := range s.providers.Items() {
		lines = append(lines, p.String())
	}
	return lines
}

// BillingStatements renders one line per patient with the total amount
// due across the patient's visits, in statement order. The view is
// read-only; the schedule is left intact.
func (s *Service) BillingStatements() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.appointments.IsEmpty() {
		return []string{EmptyCalendar}
	}
	clinic.SortByStatement(s.appointments)

	patients := collection.New(func(a, b *clinic.Patient) bool {
		return a.Profile().Equal(b.Profile())
	})
	for _, appt := range s.appointments.Items() {
		probe := clinic.NewPatient(appt.Patient)
		idx := patients.IndexOf(probe)
		if idx < 0 {
			patients.Add(probe)
			probe.AddVisit(appt)
			continue
		}
		patients.Get(idx).AddVisit(appt)
	}

	lines := make([]string, 0, patients.Size())
	for i, p := range patients.Items() {
		lines = append(lines, fmt.Sprintf("(%d) %s [due: $%.2f]", i+1, p.Profile(), float64(p.Charge())))
	}
	return lines
}

// ProviderCredits renders one line per provider with the credit earned
// from the current appointments, in provider order. Providers with no
// appointments still appear, with a zero credit.
func (s *Service) ProviderCredits() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.appointments.IsEmpty() {
		return []string{EmptyCalendar}
	}
	clinic.SortProviders(s.providers)

	lines := make([]string, 0, s.providers.Size())
	for i, provider := range s.providers.Items() {
		credit := 0
		for _, appt := range s.appointments.Items() {
			if clinic.ProviderEqual(appt.Provider, provider) {
				credit += provider.Rate()
			}
		}
		lines = append(lines, fmt.Sprintf("(%d) %s [credit amount: $%.2f]", i+1, provider.Profile(), float64(credit)))
	}
	return lines
}

func (s *Service) renderAll() []string {
	return s.renderFiltered(func(*clinic.Appointment) bool { return true })
}

func (s *Service) renderFiltered(keep func(*clinic.Appointment) bool) []string {
	if s.appointments.IsEmpty() {
		return []string{EmptyCalendar}
	}
	var lines []string
	for _, appt := range s.appointments.Items() {
		if keep(appt) {
			lines = append(lines, appt.String())
		}
	}
	if len(lines) == 0 {
		return []string{EmptyCalendar}
	}
	return lines
}
