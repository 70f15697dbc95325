package clinic

import (
	"fmt"
	"strings"
)

// Specialty is a doctor's practice area. The specialty fixes the charge
// for an office visit.
type Specialty int

const (
	Pediatrician Specialty = iota
	Allergist
	Family
)

type specialtyInfo struct {
	name   string
	charge int
}

var specialties = [...]specialtyInfo{
	Pediatrician: {"PEDIATRICIAN", 300},
	Allergist:    {"ALLERGIST", 350},
	Family:       {"FAMILY", 250},
}

// ParseSpecialty resolves a specialty token case-insensitively.
func ParseSpecialty(s string) (Specialty, error) {
	for i, info := range specialties {
		if strings.EqualFold(info.name, s) {
			return Specialty(i), nil
		}
	}
	return 0, fmt.Errorf("%w: no specialty for %q", ErrUnknownToken, s)
}

// Charge returns the per-visit charge for the specialty.
func (s Specialty) Charge() int {
	return specialties[s].charge
}

func (s Specialty) String() string {
	return specialties[s].name
}
