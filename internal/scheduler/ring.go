package scheduler

import "github.com/clinichq/clinic-scheduler/internal/clinic"

// Ring holds the technician rotation: a fixed slice in rotation order
// and one cursor marking who is tried first on the next imaging request.
// The successor of index i is (i+1) mod len, so there are no pointer
// cycles to maintain. The cursor is the fairness state that survives
// across bookings.
type Ring struct {
	techs  []*clinic.Technician
	cursor int
}

// NewRing builds a rotation over the given technicians in order. A nil
// or empty slice yields an empty ring, which every assignment reports as
// exhausted.
func NewRing(techs []*clinic.Technician) *Ring {
	return &Ring{techs: techs}
}

// Size returns the number of technicians in the rotation.
func (r *Ring) Size() int {
	return len(r.techs)
}

// Technicians returns the rotation in ring order.
func (r *Ring) Technicians() []*clinic.Technician {
	return r.techs
}

// Assign walks the rotation starting at the cursor, at most one full
// revolution, and returns the first technician the predicate accepts.
// On success the cursor advances to the chosen technician's successor,
// so the next request starts past them: strict round robin, not "most
// idle". The walk bound is captured up front.
func (r *Ring) Assign(available func(*clinic.Technician) bool) (*clinic.Technician, bool) {
	size := len(r.techs)
	for step := 0; step < size; step++ {
		idx := (r.cursor + step) % size
		tech := r.techs[idx]
		if available(tech) {
			r.cursor = (idx + 1) % size
			return tech, true
		}
	}
	return nil, false
}
