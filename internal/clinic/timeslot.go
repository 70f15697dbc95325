package clinic

import (
	"fmt"
	"strconv"
	"strings"
)

// Timeslot is one of the twelve bookable times of day, held as a 24-hour
// clock reading. Equality is ordering-equality: two slots with the same
// hour and minute are the same slot.
type Timeslot struct {
	Hour   int
	Minute int
}

// timeslots lists every bookable slot in chronological order: six in the
// morning, six in the afternoon, on the half hour.
var timeslots = [12]Timeslot{
	{9, 0}, {9, 30}, {10, 0}, {10, 30}, {11, 0}, {11, 30},
	{14, 0}, {14, 30}, {15, 0}, {15, 30}, {16, 0}, {16, 30},
}

// Timeslots returns the twelve bookable slots in chronological order.
func Timeslots() []Timeslot {
	return timeslots[:]
}

// TimeslotByNumber returns the nth slot, 1 through 12.
func TimeslotByNumber(n int) (Timeslot, error) {
	if n < 1 || n > len(timeslots) {
		return Timeslot{}, fmt.Errorf("%w: %d is not a valid time slot", ErrInvalidTimeslot, n)
	}
	return timeslots[n-1], nil
}

// ParseTimeslot matches a formatted time such as "9:00 AM" or "2:30 PM"
// against the bookable slots.
func ParseTimeslot(s string) (Timeslot, error) {
	trimmed := strings.TrimSpace(s)
	parts := strings.SplitN(trimmed, ":", 2)
	if len(parts) != 2 {
		return Timeslot{}, fmt.Errorf("%w: %q", ErrInvalidTimeslot, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Timeslot{}, fmt.Errorf("%w: %q", ErrInvalidTimeslot, s)
	}

	rest := strings.ToUpper(strings.TrimSpace(parts[1]))
	isPM := strings.Contains(rest, "PM")
	digits := strings.TrimFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
	minute, err := strconv.Atoi(digits)
	if err != nil {
		return Timeslot{}, fmt.Errorf("%w: %q", ErrInvalidTimeslot, s)
	}

	if isPM && hour != 12 {
		hour += 12
	}

	want := Timeslot{Hour: hour, Minute: minute}
	for _, slot := range timeslots {
		if slot.Equal(want) {
			return slot, nil
		}
	}
	return Timeslot{}, fmt.Errorf("%w: %q", ErrInvalidTimeslot, s)
}

// Compare orders slots by (hour, minute).
func (t Timeslot) Compare(other Timeslot) int {
	if t.Hour != other.Hour {
		return t.Hour - other.Hour
	}
	return t.Minute - other.Minute
}

// Equal reports whether two slots name the same time of day.
func (t Timeslot) Equal(other Timeslot) bool {
	return t.Compare(other) == 0
}

// String renders the slot on a 12-hour clock, "9:00 AM" or "2:30 PM".
func (t Timeslot) String() string {
	if t.Hour < 12 {
		return fmt.Sprintf("%d:%02d AM", t.Hour, t.Minute)
	}
	hour := t.Hour - 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d PM", hour, t.Minute)
}
