package clinic

import "fmt"

// Provider is a clinician who can hold appointments. The two variants
// are *Doctor and *Technician; code that needs the variant dispatches on
// the concrete type, never on reflection.
type Provider interface {
	Profile() Profile
	Location() Location
	// Rate is the charge credited to the provider for one visit.
	Rate() int
	fmt.Stringer
}

// Doctor is a provider identified by an NPI whose visit charge is fixed
// by specialty.
type Doctor struct {
	profile   Profile
	location  Location
	specialty Specialty
	npi       string
}

// NewDoctor builds a Doctor.
func NewDoctor(profile Profile, location Location, specialty Specialty, npi string) *Doctor {
	return &Doctor{profile: profile, location: location, specialty: specialty, npi: npi}
}

func (d *Doctor) Profile() Profile     { return d.profile }
func (d *Doctor) Location() Location   { return d.location }
func (d *Doctor) Specialty() Specialty { return d.specialty }
func (d *Doctor) NPI() string          { return d.npi }

// Rate returns the specialty charge.
func (d *Doctor) Rate() int { return d.specialty.Charge() }

func (d *Doctor) String() string {
	return fmt.Sprintf("[%s, %s][%s, #%s]", d.profile, d.location, d.specialty, d.npi)
}

// Technician is a provider with a flat per-visit rate, assigned to
// imaging appointments through the rotation rather than chosen by the
// patient.
type Technician struct {
	profile      Profile
	location     Location
	ratePerVisit int
}

// NewTechnician builds a Technician.
func NewTechnician(profile Profile, location Location, ratePerVisit int) *Technician {
	return &Technician{profile: profile, location: location, ratePerVisit: ratePerVisit}
}

func (t *Technician) Profile() Profile   { return t.profile }
func (t *Technician) Location() Location { return t.location }

// Rate returns the flat per-visit rate.
func (t *Technician) Rate() int { return t.ratePerVisit }

func (t *Technician) String() string {
	return fmt.Sprintf("[%s, %s][rate: $%d.00]", t.profile, t.location, t.ratePerVisit)
}

// ProviderEqual reports whether two providers are the same person. The
// credit report keys on this, so identity is profile identity.
func ProviderEqual(a, b Provider) bool {
	return a.Profile().Equal(b.Profile())
}
