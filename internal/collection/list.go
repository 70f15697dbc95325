// Package collection provides the insertion-ordered, duplicate-rejecting
// list backing the appointment and provider sets. Element identity is an
// injected equality function, so "duplicate" means whatever the domain
// says it means (for appointments: same patient, date, and timeslot).
package collection

// growIncrement is the fixed number of extra slots allocated when the
// backing array is full.
const growIncrement = 4

// List is a growable sequence that preserves insertion order on Add and
// shifts left on Remove. Adding an element equal to an existing one is a
// no-op.
type List[E any] struct {
	items []E
	equal func(a, b E) bool
}

// New creates an empty list using equal to decide element identity.
func New[E any](equal func(a, b E) bool) *List[E] {
	if equal == nil {
		panic("collection: equality function required")
	}
	return &List[E]{
		items: make([]E, 0, growIncrement),
		equal: equal,
	}
}

// IndexOf returns the position of the first element equal to e, or -1.
func (l *List[E]) IndexOf(e E) int {
	for i, item := range l.items {
		if l.equal(item, e) {
			return i
		}
	}
	return -1
}

// Contains reports whether an element equal to e is present.
func (l *List[E]) Contains(e E) bool {
	return l.IndexOf(e) != -1
}

// Add appends e unless an equal element is already present.
func (l *List[E]) Add(e E) {
	if l.Contains(e) {
		return
	}
	if len(l.items) == cap(l.items) {
		grown := make([]E, len(l.items), cap(l.items)+growIncrement)
		copy(grown, l.items)
		l.items = grown
	}
	l.items = append(l.items, e)
}

// Remove deletes the first element equal to e, shifting later elements
// left. Removing an absent element is a no-op.
func (l *List[E]) Remove(e E) {
	i := l.IndexOf(e)
	if i == -1 {
		return
	}
	var zero E
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
}

// Get returns the element at index i.
func (l *List[E]) Get(i int) E {
	return l.items[i]
}

// Set replaces the element at index i.
func (l *List[E]) Set(i int, e E) {
	l.items[i] = e
}

// Size returns the number of elements.
func (l *List[E]) Size() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no elements.
func (l *List[E]) IsEmpty() bool {
	return len(l.items) == 0
}

// Items returns the live backing slice. Callers reorder it in place when
// sorting; they must not append to it.
func (l *List[E]) Items() []E {
	return l.items
}
