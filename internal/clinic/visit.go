package clinic

// Visit is one node in a patient's billing history, owned by exactly one
// Patient and appended at the tail in arrival order.
type Visit struct {
	appointment *Appointment
	next        *Visit
}

// Appointment returns the booking this visit bills for.
func (v *Visit) Appointment() *Appointment {
	return v.appointment
}

// Next returns the following visit, or nil at the end of the chain.
func (v *Visit) Next() *Visit {
	return v.next
}

// Patient is a person with a visit history. The statement view rebuilds
// patients from the appointment collection whenever it runs, so a
// Patient is a derived index, not an independently stored record.
type Patient struct {
	profile    Profile
	head, tail *Visit
}

// NewPatient builds a patient with an empty visit history.
func NewPatient(profile Profile) *Patient {
	return &Patient{profile: profile}
}

// Profile returns the patient's identity.
func (p *Patient) Profile() Profile {
	return p.profile
}

// Visits returns the first visit in arrival order, or nil.
func (p *Patient) Visits() *Visit {
	return p.head
}

// AddVisit appends an appointment to the end of the visit chain.
func (p *Patient) AddVisit(a *Appointment) {
	v := &Visit{appointment: a}
	if p.head == nil {
		p.head = v
		p.tail = v
		return
	}
	p.tail.next = v
	p.tail = v
}

// Charge sums the provider rate over every visit.
func (p *Patient) Charge() int {
	total := 0
	for v := p.head; v != nil; v = v.next {
		total += v.appointment.Provider.Rate()
	}
	return total
}
