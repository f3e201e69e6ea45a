package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		hours    RestaurantHours
		date     time.Time
		interval int
		want     []string
	}{
		{
			name:     "lunch window with inclusive closing slot",
			hours:    RestaurantHours{OpeningHour: 10, ClosingHour: 13},
			date:     date(2024, time.June, 1),
			interval: 30,
			want:     []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00"},
		},
		{
			name:     "single-hour window",
			hours:    RestaurantHours{OpeningHour: 18, ClosingHour: 19},
			date:     date(2024, time.June, 1),
			interval: 30,
			want:     []string{"18:00", "18:30", "19:00"},
		},
		{
			name:     "opening equals closing emits exactly one slot",
			hours:    RestaurantHours{OpeningHour: 12, ClosingHour: 12},
			date:     date(2024, time.June, 1),
			interval: 30,
			want:     []string{"12:00"},
		},
		{
			name:     "hour-long interval",
			hours:    RestaurantHours{OpeningHour: 10, ClosingHour: 13},
			date:     date(2024, time.June, 1),
			interval: 60,
			want:     []string{"10:00", "11:00", "12:00", "13:00"},
		},
		{
			name:     "no date chosen yet",
			hours:    RestaurantHours{OpeningHour: 10, ClosingHour: 22},
			date:     time.Time{},
			interval: 30,
			want:     []string{},
		},
		{
			name:     "malformed window opening after closing",
			hours:    RestaurantHours{OpeningHour: 18, ClosingHour: 9},
			date:     date(2024, time.June, 1),
			interval: 30,
			want:     []string{},
		},
		{
			name:     "out of range opening hour",
			hours:    RestaurantHours{OpeningHour: -1, ClosingHour: 22},
			date:     date(2024, time.June, 1),
			interval: 30,
			want:     []string{},
		},
		{
			name:     "non-positive interval",
			hours:    RestaurantHours{OpeningHour: 10, ClosingHour: 13},
			date:     date(2024, time.June, 1),
			interval: 0,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.hours, tt.date, tt.interval)

			got := make([]string, len(slots))
			for i, s := range slots {
				got[i] = s.Format("15:04")
			}
			assert.Equal(t, tt.want, got)

			// All slots are anchored to the requested date
			for _, s := range slots {
				assert.True(t, IsSameDay(s, tt.date))
			}
		})
	}
}

func TestGenerateSlots_StrictlyIncreasing(t *testing.T) {
	hours := RestaurantHours{OpeningHour: 10, ClosingHour: 22}
	slots := GenerateSlots(hours, date(2024, time.June, 1), 30)

	require.NotEmpty(t, slots)
	assert.Equal(t, 10, slots[0].Hour())
	assert.Equal(t, 0, slots[0].Minute())

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].After(slots[i-1]), "slot %d is not after slot %d", i, i-1)
	}

	last := slots[len(slots)-1]
	closing := time.Date(2024, time.June, 1, 22, 0, 0, 0, time.UTC)
	assert.False(t, last.After(closing))
	assert.True(t, last.After(closing.Add(-30*time.Minute)))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	hours := RestaurantHours{OpeningHour: 9, ClosingHour: 21}
	d := date(2025, time.January, 15)

	first := GenerateSlots(hours, d, 30)
	second := GenerateSlots(hours, d, 30)

	assert.Equal(t, first, second)
}

func TestSlotExists(t *testing.T) {
	hours := RestaurantHours{OpeningHour: 10, ClosingHour: 13}
	d := date(2024, time.June, 1)

	noon := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, SlotExists(hours, d, 30, noon))

	afterClose := time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC)
	assert.False(t, SlotExists(hours, d, 30, afterClose))

	offGrid := time.Date(2024, time.June, 1, 12, 15, 0, 0, time.UTC)
	assert.False(t, SlotExists(hours, d, 30, offGrid))

	// Same wall-clock reading in a different location still matches
	loc := time.FixedZone("UTC+3", 3*60*60)
	noonElsewhere := time.Date(2024, time.June, 1, 12, 0, 0, 0, loc)
	assert.True(t, SlotExists(hours, d, 30, noonElsewhere))
}

func TestNormalizeHours(t *testing.T) {
	opening := 9
	closing := 23
	bad := 25

	tests := []struct {
		name    string
		opening *int
		closing *int
		want    RestaurantHours
	}{
		{"both present", &opening, &closing, RestaurantHours{9, 23}},
		{"both absent fall back to defaults", nil, nil, RestaurantHours{DefaultOpeningHour, DefaultClosingHour}},
		{"absent opening", nil, &closing, RestaurantHours{DefaultOpeningHour, 23}},
		{"out of range closing falls back", &opening, &bad, RestaurantHours{9, DefaultClosingHour}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHours(tt.opening, tt.closing))
		})
	}
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2024, time.June, 1, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(date(2024, time.May, 31), now))
	// Today is not in the past, even though the day has started
	assert.False(t, IsDateInPast(date(2024, time.June, 1), now))
	assert.False(t, IsDateInPast(date(2024, time.June, 2), now))
}
