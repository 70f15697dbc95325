package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichq/clinic-scheduler/internal/collection"
)

func appointmentList(appts ...*Appointment) *collection.List[*Appointment] {
	l := collection.New(func(a, b *Appointment) bool { return a.Equal(b) })
	for _, a := range appts {
		l.Add(a)
	}
	return l
}

func TestSortByDateKeyOrder(t *testing.T) {
	jane := NewProfile("Jane", "Doe", NewDate(5, 5, 1990))
	john := NewProfile("John", "Smith", NewDate(3, 3, 1985))

	drLim := NewDoctor(NewProfile("Rachael", "Lim", NewDate(11, 30, 1975)), Piscataway, Pediatrician, "23")
	drPatel := NewDoctor(NewProfile("Andrew", "Patel", NewDate(1, 21, 1989)), Bridgewater, Family, "01")

	laterDay := NewAppointment(NewDate(10, 2, 2026), Timeslot{9, 0}, jane, drLim)
	laterSlot := NewAppointment(NewDate(10, 1, 2026), Timeslot{10, 0}, jane, drLim)
	patelTie := NewAppointment(NewDate(10, 1, 2026), Timeslot{9, 0}, john, drPatel)
	limTie := NewAppointment(NewDate(10, 1, 2026), Timeslot{9, 0}, jane, drLim)

	l := appointmentList(laterDay, laterSlot, patelTie, limTie)
	SortByDate(l)

	// Date first, then slot, then provider last name (Lim < Patel).
	assert.Equal(t, []*Appointment{limTie, patelTie, laterSlot, laterDay}, l.Items())
}

func TestSortByDateIdempotent(t *testing.T) {
	jane := NewProfile("Jane", "Doe", NewDate(5, 5, 1990))
	dr := testDoctor()
	a := NewAppointment(NewDate(10, 2, 2026), Timeslot{9, 0}, jane, dr)
	b := NewAppointment(NewDate(10, 1, 2026), Timeslot{9, 0}, jane, dr)

	l := appointmentList(a, b)
	SortByDate(l)
	once := append([]*Appointment(nil), l.Items()...)
	SortByDate(l)
	assert.Equal(t, once, l.Items())
}

func TestLastSortWins(t *testing.T) {
	// With stable sorts, date-then-location equals location alone on the
	// same input.
	jane := NewProfile("Jane", "Doe", NewDate(5, 5, 1990))
	john := NewProfile("John", "Smith", NewDate(3, 3, 1985))
	mercer := NewDoctor(NewProfile("Justin", "Harcourt", NewDate(10, 2, 1970)), Princeton, Pediatrician, "32")
	somerset := NewDoctor(NewProfile("Andrew", "Patel", NewDate(1, 21, 1989)), Bridgewater, Family, "01")

	build := func() *collection.List[*Appointment] {
		return appointmentList(
			NewAppointment(NewDate(10, 2, 2026), Timeslot{9, 0}, jane, mercer),
			NewAppointment(NewDate(10, 1, 2026), Timeslot{9, 0}, john, somerset),
			NewAppointment(NewDate(10, 3, 2026), Timeslot{9, 0}, jane, somerset),
		)
	}

	chained := build()
	SortByDate(chained)
	SortByLocation(chained)

	direct := build()
	SortByLocation(direct)

	require.Equal(t, direct.Size(), chained.Size())
	for i := 0; i < direct.Size(); i++ {
		assert.Equal(t, direct.Get(i).String(), chained.Get(i).String())
	}
}

func TestSortByLocationCountyFirst(t *testing.T) {
	jane := NewProfile("Jane", "Doe", NewDate(5, 5, 1990))
	mercer := NewDoctor(NewProfile("Justin", "Harcourt", NewDate(10, 2, 1970)), Princeton, Pediatrician, "32")   // Mercer
	union := NewDoctor(NewProfile("Ben", "Zimnes", NewDate(6, 10, 1983)), Clark, Family, "11")                   // Union
	middlesex := NewDoctor(NewProfile("Rachael", "Lim", NewDate(11, 30, 1975)), Piscataway, Pediatrician, "23")  // Middlesex

	inUnion := NewAppointment(NewDate(10, 1, 2026), Timeslot{9, 0}, jane, union)
	inMercer := NewAppointment(NewDate(10, 2, 2026), Timeslot{9, 0}, jane, mercer)
	inMiddlesex := NewAppointment(NewDate(10, 3, 2026), Timeslot{9, 0}, jane, middlesex)

	l := appointmentList(inUnion, inMercer, inMiddlesex)
	SortByLocation(l)

	assert.Equal(t, []*Appointment{inMercer, inMiddlesex, inUnion}, l.Items())
}

func TestSortByPatientGroupsThenOrders(t *testing.T) {
	adams := NewProfile("Amy", "Adams", NewDate(1, 1, 1995))
	brown := NewProfile("Bob", "Brown", NewDate(2, 2, 1990))
	dr := NewDoctor(NewProfile("Gary", "Johnson", NewDate(1, 25, 1954)), Morristown, Family, "54")

	brownEarly := NewAppointment(NewDate(10, 1, 2026), Timeslot{9, 0}, brown, dr)
	adamsLate := NewAppointment(NewDate(10, 5, 2026), Timeslot{9, 0}, adams, dr)
	adamsEarly := NewAppointment(NewDate(10, 2, 2026), Timeslot{9, 0}, adams, dr)
	adamsSameDay := NewAppointment(NewDate(10, 2, 2026), Timeslot{14, 0}, adams, dr)

	l := appointmentList(brownEarly, adamsLate, adamsSameDay, adamsEarly)
	SortByPatient(l)

	// Adams before Brown; Adams rows chronological by date then slot.
	assert.Equal(t, []*Appointment{adamsEarly, adamsSameDay, adamsLate, brownEarly}, l.Items())
}

func TestSortByStatementYearOnlyTiebreak(t *testing.T) {
	jane := NewProfile("Jane", "Doe", NewDate(5, 5, 1990))
	dr := testDoctor()

	// Same patient, same year, different months: the year-only tertiary
	// key ties, so input order survives.
	december := NewAppointment(NewDate(12, 1, 2026), Timeslot{9, 0}, jane, dr)
	march := NewAppointment(NewDate(3, 2, 2026), Timeslot{9, 0}, jane, dr)
	priorYear := NewAppointment(NewDate(6, 3, 2025), Timeslot{9, 0}, jane, dr)

	l := appointmentList(december, march, priorYear)
	SortByStatement(l)

	assert.Equal(t, []*Appointment{priorYear, december, march}, l.Items(),
		"earlier year first; same-year rows keep input order even out of month order")
}

func TestSortByStatementNamesCaseInsensitive(t *testing.T) {
	dr := testDoctor()
	upper := NewAppointment(NewDate(10, 1, 2026), Timeslot{9, 0}, NewProfile("AMY", "BROWN", NewDate(1, 1, 1990)), dr)
	lower := NewAppointment(NewDate(10, 2, 2026), Timeslot{9, 0}, NewProfile("zed", "adams", NewDate(1, 1, 1990)), dr)

	l := appointmentList(upper, lower)
	SortByStatement(l)

	assert.Equal(t, []*Appointment{lower, upper}, l.Items(), "adams before BROWN ignoring case")
}

func TestSortProviders(t *testing.T) {
	l := collection.New(ProviderEqual)
	zimel := NewDoctor(NewProfile("Gary", "Zimel", NewDate(11, 14, 1978)), Bridgewater, Allergist, "25")
	patelA := NewDoctor(NewProfile("Andrew", "Patel", NewDate(1, 21, 1989)), Bridgewater, Family, "01")
	patelJ := NewTechnician(NewProfile("Jenny", "Patel", NewDate(8, 10, 1991)), Bridgewater, 125)
	for _, p := range []Provider{zimel, patelJ, patelA} {
		l.Add(p)
	}

	SortProviders(l)

	assert.Equal(t, []Provider{patelA, patelJ, zimel}, l.Items())
}
