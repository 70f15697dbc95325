package clinic

import (
	"fmt"
	"strings"
)

// Profile identifies a person: first name, last name, date of birth.
// Two profiles are the same person when the names match ignoring case
// and the birth dates match exactly.
type Profile struct {
	FirstName string
	LastName  string
	DOB       Date
}

// NewProfile builds a Profile.
func NewProfile(first, last string, dob Date) Profile {
	return Profile{FirstName: first, LastName: last, DOB: dob}
}

// Equal reports whether two profiles identify the same person.
func (p Profile) Equal(other Profile) bool {
	return strings.EqualFold(p.FirstName, other.FirstName) &&
		strings.EqualFold(p.LastName, other.LastName) &&
		p.DOB.Equal(other.DOB)
}

// Compare orders profiles by last name, first name, then date of birth.
// The name comparisons are case-sensitive byte order, so the relation is
// a total order with no ties short of full equality.
func (p Profile) Compare(other Profile) int {
	if c := strings.Compare(p.LastName, other.LastName); c != 0 {
		return c
	}
	if c := strings.Compare(p.FirstName, other.FirstName); c != 0 {
		return c
	}
	return p.DOB.Compare(other.DOB)
}

// String renders the profile as "First Last M/D/YYYY".
func (p Profile) String() string {
	return fmt.Sprintf("%s %s %s", p.FirstName, p.LastName, p.DOB)
}
