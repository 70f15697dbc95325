package clinic

import (
	"sort"
	"strings"

	"github.com/clinichq/clinic-scheduler/internal/collection"
)

// The report views each have a fixed multi-key ordering. All sorts are
// in place and stable, so elements that compare equal keep their
// relative input order and chained sorts behave predictably.

// SortByDate orders appointments by date, then timeslot, then the
// provider's last name (case-sensitive).
func SortByDate(appts *collection.List[*Appointment]) {
	items := appts.Items()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		if c := a.Slot.Compare(b.Slot); c != 0 {
			return c < 0
		}
		return a.Provider.Profile().LastName < b.Provider.Profile().LastName
	})
}

// SortByPatient groups appointments by patient, then orders each
// patient's rows by provider location, date, and timeslot. The billing
// statement derivation depends on this grouping.
func SortByPatient(appts *collection.List[*Appointment]) {
	items := appts.Items()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if c := a.Patient.Compare(b.Patient); c != 0 {
			return c < 0
		}
		if a.Provider.Location() != b.Provider.Location() {
			return a.Provider.Location() < b.Provider.Location()
		}
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		return a.Slot.Compare(b.Slot) < 0
	})
}

// SortByLocation orders appointments by the provider site's county
// (case-insensitive), then date, then timeslot.
func SortByLocation(appts *collection.List[*Appointment]) {
	items := appts.Items()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if c := compareFold(a.Provider.Location().County(), b.Provider.Location().County()); c != 0 {
			return c < 0
		}
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		return a.Slot.Compare(b.Slot) < 0
	})
}

// SortByStatement orders appointments by patient last name and first
// name (case-insensitive), then by the appointment year only. Two visits
// in different months of the same year keep their input order.
func SortByStatement(appts *collection.List[*Appointment]) {
	items := appts.Items()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if c := compareFold(a.Patient.LastName, b.Patient.LastName); c != 0 {
			return c < 0
		}
		if c := compareFold(a.Patient.FirstName, b.Patient.FirstName); c != 0 {
			return c < 0
		}
		return a.Date.Year < b.Date.Year
	})
}

// SortProviders orders providers by last name then first name, both
// case-insensitive.
func SortProviders(providers *collection.List[Provider]) {
	items := providers.Items()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Profile(), items[j].Profile()
		if c := compareFold(a.LastName, b.LastName); c != 0 {
			return c < 0
		}
		return compareFold(a.FirstName, b.FirstName) < 0
	})
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
