package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekFull = []string{
	"Monday: 9:00 AM – 10:00 PM",
	"Tuesday: 9:00 AM – 10:00 PM",
	"Wednesday: Closed",
	"Thursday: 9:00 AM – 10:00 PM",
	"Friday: 9:00 AM – 11:00 PM",
	"Saturday: Open 24 hours",
	"Sunday: 10:00 AM – 6:00 PM",
}

func at(hour, minute int) *TimeOfDay {
	return &TimeOfDay{Hour: hour, Minute: minute}
}

func TestParseEntry(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want HoursEntry
	}{
		{
			name: "closed day",
			text: "Wednesday: Closed",
			want: HoursEntry{Kind: HoursClosed},
		},
		{
			name: "around the clock",
			text: "Saturday: Open 24 hours",
			want: HoursEntry{Kind: HoursOpen24},
		},
		{
			name: "range with en-dash",
			text: "Monday: 9:00 AM – 10:00 PM",
			want: HoursEntry{Kind: HoursRange, Open: TimeOfDay{9, 0}, Close: TimeOfDay{22, 0}},
		},
		{
			name: "range with hyphen",
			text: "Monday: 9:00 AM - 10:00 PM",
			want: HoursEntry{Kind: HoursRange, Open: TimeOfDay{9, 0}, Close: TimeOfDay{22, 0}},
		},
		{
			name: "lowercase meridiems",
			text: "Friday: 11:30 am – 9:15 pm",
			want: HoursEntry{Kind: HoursRange, Open: TimeOfDay{11, 30}, Close: TimeOfDay{21, 15}},
		},
		{
			name: "noon and midnight conversion",
			text: "Sunday: 12:00 AM – 12:00 PM",
			want: HoursEntry{Kind: HoursRange, Open: TimeOfDay{0, 0}, Close: TimeOfDay{12, 0}},
		},
		{
			name: "free text falls through",
			text: "Monday: call ahead for hours",
			want: HoursEntry{Kind: HoursUnrecognized},
		},
		{
			name: "empty string",
			text: "",
			want: HoursEntry{Kind: HoursUnrecognized},
		},
		{
			name: "range crossing midnight is not representable",
			text: "Friday: 8:00 PM – 2:00 AM",
			want: HoursEntry{Kind: HoursUnrecognized},
		},
		{
			name: "minutes out of range",
			text: "Monday: 9:75 AM – 10:00 PM",
			want: HoursEntry{Kind: HoursUnrecognized},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseEntry(tc.text))
		})
	}
}

func TestIsOpenAt_FailOpenDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty entry list is open at any time", func(t *testing.T) {
		assert.True(t, IsOpenAt(nil, time.Monday, nil))
		assert.True(t, IsOpenAt([]string{}, time.Sunday, at(3, 0)))
	})

	t.Run("missing weekday entry is open", func(t *testing.T) {
		entries := []string{"Monday: 9:00 AM – 10:00 PM"}
		assert.True(t, IsOpenAt(entries, time.Tuesday, at(4, 0)))
	})

	t.Run("weekday match requires full-name prefix", func(t *testing.T) {
		entries := []string{"Mon: Closed", "monday: Closed"}
		assert.True(t, IsOpenAt(entries, time.Monday, at(12, 0)))
	})

	t.Run("unparseable entry is open", func(t *testing.T) {
		entries := []string{"Monday: hours vary by season"}
		assert.True(t, IsOpenAt(entries, time.Monday, at(12, 0)))
	})
}

func TestIsOpenAt_ClosedAndOpen24(t *testing.T) {
	t.Parallel()

	times := []*TimeOfDay{nil, at(0, 0), at(9, 0), at(12, 30), at(23, 59)}

	for _, proposed := range times {
		assert.False(t, IsOpenAt(weekFull, time.Wednesday, proposed),
			"Closed entry must win regardless of proposed time %v", proposed)
		assert.True(t, IsOpenAt(weekFull, time.Saturday, proposed),
			"Open 24 hours must win regardless of proposed time %v", proposed)
	}
}

func TestIsOpenAt_RangeBoundaries(t *testing.T) {
	t.Parallel()

	entries := []string{"Monday: 9:00 AM – 10:00 PM"}

	cases := []struct {
		name string
		at   *TimeOfDay
		want bool
	}{
		{"opening minute is open", at(9, 0), true},
		{"minute before opening is closed", at(8, 59), false},
		{"closing minute is open", at(22, 0), true},
		{"minute after closing is closed", at(22, 1), false},
		{"mid-afternoon is open", at(15, 30), true},
		{"no proposed time presumes open", nil, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsOpenAt(entries, time.Monday, tc.at))
		})
	}
}

func TestDescribeConflict(t *testing.T) {
	t.Parallel()

	t.Run("closed day produces a warning with name and time", func(t *testing.T) {
		msg, warned := DescribeConflict("Tsukiji Outer Market", weekFull, time.Wednesday, TimeOfDay{9, 0})
		require.True(t, warned)
		assert.Contains(t, msg, "Tsukiji Outer Market")
		assert.Contains(t, msg, "09:00")
		assert.Contains(t, msg, "Wednesday")
	})

	t.Run("outside the day's range produces a warning", func(t *testing.T) {
		_, warned := DescribeConflict("Senso-ji Temple", weekFull, time.Sunday, TimeOfDay{19, 0})
		assert.True(t, warned)
	})

	t.Run("open time produces nothing", func(t *testing.T) {
		msg, warned := DescribeConflict("Senso-ji Temple", weekFull, time.Monday, TimeOfDay{10, 0})
		assert.False(t, warned)
		assert.Empty(t, msg)
	})

	t.Run("malformed data never warns", func(t *testing.T) {
		entries := []string{"Monday: ask at the gate"}
		_, warned := DescribeConflict("Meiji Shrine", entries, time.Monday, TimeOfDay{3, 0})
		assert.False(t, warned)
	})
}
