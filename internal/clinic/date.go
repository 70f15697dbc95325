// Package clinic holds the scheduling domain model: calendar dates,
// timeslots, clinic sites, providers, patients, and appointments, plus
// the ordering rules the reporting views rely on.
package clinic

import (
	"fmt"
	"time"
)

const (
	quadrennial      = 4
	centennial       = 100
	quatercentennial = 400

	// bookingHorizonMonths bounds how far out an appointment may be made.
	bookingHorizonMonths = 6
)

// daysInMonth holds the day count per month in a non-leap year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// nowFunc is swapped out by tests that need a fixed "today".
var nowFunc = time.Now

// Date is a plain calendar date. Construction never fails: a Date may be
// semantically impossible (month 13, day 0) until IsValid is consulted.
type Date struct {
	Month int
	Day   int
	Year  int
}

// NewDate builds a Date from month, day, and year.
func NewDate(month, day, year int) Date {
	return Date{Month: month, Day: day, Year: year}
}

// ParseDate parses "M/D/YYYY". It rejects strings that are not three
// numeric fields; whether the result is a real calendar date is still a
// separate IsValid question, the same split NewDate makes.
func ParseDate(s string) (Date, error) {
	var month, day, year int
	if _, err := fmt.Sscanf(s, "%d/%d/%d", &month, &day, &year); err != nil {
		return Date{}, fmt.Errorf("%w: date %q is not in M/D/YYYY form", ErrInvalidDate, s)
	}
	return Date{Month: month, Day: day, Year: year}, nil
}

// Today returns the current wall-clock date.
func Today() Date {
	now := nowFunc()
	return Date{Month: int(now.Month()), Day: now.Day(), Year: now.Year()}
}

// IsLeapYear reports whether the date's year is a Gregorian leap year.
func (d Date) IsLeapYear() bool {
	if d.Year%quadrennial != 0 {
		return false
	}
	if d.Year%centennial == 0 {
		return d.Year%quatercentennial == 0
	}
	return true
}

// IsValid reports whether the date exists on the calendar.
func (d Date) IsValid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= d.daysInMonth()
}

func (d Date) daysInMonth() int {
	if d.Month == 2 && d.IsLeapYear() {
		return 29
	}
	return daysInMonth[d.Month-1]
}

// Compare orders dates by (year, month, day). It returns a negative
// number, zero, or a positive number as d sorts before, equal to, or
// after other.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return d.Year - other.Year
	}
	if d.Month != other.Month {
		return d.Month - other.Month
	}
	return d.Day - other.Day
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// IsNotToday reports whether the date differs from today.
func (d Date) IsNotToday() bool {
	return !d.Equal(Today())
}

// IsAfterToday reports whether the date falls strictly after today.
func (d Date) IsAfterToday() bool {
	return d.Compare(Today()) > 0
}

// IsNotWeekend reports whether the date is a weekday. The weekday is
// derived with Sakamoto's method.
func (d Date) IsNotWeekend() bool {
	dow := d.dayOfWeek()
	return dow != 0 && dow != 6 // Sunday, Saturday
}

// dayOfWeek returns 0 for Sunday through 6 for Saturday.
func (d Date) dayOfWeek() int {
	offsets := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := d.Year
	if d.Month < 3 {
		y--
	}
	return (y + y/4 - y/100 + y/400 + offsets[d.Month-1] + d.Day) % 7
}

// WithinSixMonths reports whether the date falls strictly before today
// plus six calendar months. The limit day is clamped into the target
// month, matching calendar-library month addition (Jan 31 + 6 months is
// Jul 31, Aug 31 + 6 months is Feb 28/29).
func (d Date) WithinSixMonths() bool {
	return d.Compare(Today().addMonths(bookingHorizonMonths)) < 0
}

func (d Date) addMonths(months int) Date {
	month := d.Month + months
	year := d.Year
	for month > 12 {
		month -= 12
		year++
	}
	out := Date{Month: month, Day: d.Day, Year: year}
	if max := out.daysInMonth(); out.Day > max {
		out.Day = max
	}
	return out
}

// String renders the date as M/D/YYYY without zero padding.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}

// ValidateBirthDate applies the date-of-birth acceptance rule: the date
// must lie strictly in the past and exist on the calendar. The first
// failing rule produces the error, matching the order the intake form
// checks them in.
func ValidateBirthDate(d Date) error {
	if !d.IsNotToday() || d.IsAfterToday() {
		return fmt.Errorf("%w: patient dob %s is today or a date after today", ErrInvalidDate, d)
	}
	if !d.IsValid() {
		return fmt.Errorf("%w: patient dob %s is not a valid calendar date", ErrInvalidDate, d)
	}
	return nil
}

// ValidateAppointmentDate applies the booking-date acceptance rule in
// priority order: calendar-valid, strictly in the future, a weekday, and
// inside the six-month booking horizon. Only the first failing rule is
// reported.
func ValidateAppointmentDate(d Date) error {
	switch {
	case !d.IsValid():
		return fmt.Errorf("%w: appointment date %s is not a valid calendar date", ErrInvalidDate, d)
	case !d.IsNotToday() || !d.IsAfterToday():
		return fmt.Errorf("%w: appointment date %s is today or a date before today", ErrInvalidDate, d)
	case !d.IsNotWeekend():
		return fmt.Errorf("%w: appointment date %s is Saturday or Sunday", ErrInvalidDate, d)
	case !d.WithinSixMonths():
		return fmt.Errorf("%w: appointment date %s is not within six months", ErrInvalidDate, d)
	}
	return nil
}
