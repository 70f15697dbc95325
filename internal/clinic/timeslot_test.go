package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeslotsFixedSet(t *testing.T) {
	slots := Timeslots()
	require.Len(t, slots, 12)

	// Six morning, six afternoon, chronological.
	for i := 0; i < 6; i++ {
		assert.Less(t, slots[i].Hour, 12, "slot %d should be morning", i+1)
	}
	for i := 6; i < 12; i++ {
		assert.GreaterOrEqual(t, slots[i].Hour, 14, "slot %d should be afternoon", i+1)
	}
	for i := 1; i < len(slots); i++ {
		assert.Negative(t, slots[i-1].Compare(slots[i]))
	}
}

func TestTimeslotByNumber(t *testing.T) {
	first, err := TimeslotByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, Timeslot{9, 0}, first)

	last, err := TimeslotByNumber(12)
	require.NoError(t, err)
	assert.Equal(t, Timeslot{16, 30}, last)

	_, err = TimeslotByNumber(0)
	assert.ErrorIs(t, err, ErrInvalidTimeslot)
	_, err = TimeslotByNumber(13)
	assert.ErrorIs(t, err, ErrInvalidTimeslot)
}

func TestParseTimeslot(t *testing.T) {
	tests := []struct {
		in   string
		want Timeslot
	}{
		{"9:00 AM", Timeslot{9, 0}},
		{"11:30 AM", Timeslot{11, 30}},
		{"2:00 PM", Timeslot{14, 0}},
		{"4:30 PM", Timeslot{16, 30}},
		{"  10:30 am ", Timeslot{10, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeslot(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseTimeslotRejectsNonSlots(t *testing.T) {
	for _, in := range []string{"12:00 PM", "9:15 AM", "8:00 AM", "5:00 PM", "nonsense", "9"} {
		_, err := ParseTimeslot(in)
		assert.ErrorIs(t, err, ErrInvalidTimeslot, "input %q", in)
	}
}

func TestTimeslotString(t *testing.T) {
	assert.Equal(t, "9:00 AM", Timeslot{9, 0}.String())
	assert.Equal(t, "11:30 AM", Timeslot{11, 30}.String())
	assert.Equal(t, "2:30 PM", Timeslot{14, 30}.String())
	assert.Equal(t, "4:00 PM", Timeslot{16, 0}.String())
}

func TestTimeslotRoundTrip(t *testing.T) {
	for _, slot := range Timeslots() {
		parsed, err := ParseTimeslot(slot.String())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(slot))
	}
}
