package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpe-apps/MPE-ReservationService/pkg/ptr"
)

func TestParsePax(t *testing.T) {
	tests := []struct {
		name       string
		pax        string
		wantNil    bool
		wantLarge  bool
		wantCount  int
		wantOnWire string
	}{
		{name: "empty means not selected", pax: "", wantNil: true},
		{name: "blank means not selected", pax: "   ", wantNil: true},
		{name: "plain count", pax: "4", wantCount: 4, wantOnWire: "4"},
		{name: "count with surrounding spaces", pax: " 2 ", wantCount: 2, wantOnWire: "2"},
		{name: "large-party sentinel", pax: "9+", wantLarge: true, wantOnWire: "9+"},
		{name: "zero is preserved for validation", pax: "0", wantCount: 0, wantOnWire: "0"},
		{name: "negative is preserved for validation", pax: "-3", wantCount: -3, wantOnWire: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePax(tt.pax)

			if tt.wantNil {
				assert.Nil(t, p)
				return
			}

			require.NotNil(t, p)
			assert.Equal(t, tt.wantLarge, p.IsLargeGroup())
			assert.Equal(t, tt.wantOnWire, p.PaxString())

			if !tt.wantLarge {
				n, ok := p.Count()
				require.True(t, ok)
				assert.Equal(t, tt.wantCount, n)
			}
		})
	}
}

func TestParsePax_NonNumeric(t *testing.T) {
	p := ParsePax("lots")
	require.NotNil(t, p)

	assert.False(t, p.IsLargeGroup())
	_, ok := p.Count()
	assert.False(t, ok)
	assert.False(t, p.InInlineRange(DefaultMaxInlinePartySize))
	assert.Equal(t, "", p.PaxString())
}

func TestPartySize_LargeGroupNeverCounts(t *testing.T) {
	p := NewLargeGroup()

	_, ok := p.Count()
	assert.False(t, ok, "large group must not expose a numeric count")
	assert.Equal(t, LargePartySentinel, p.PaxString())
	assert.True(t, p.InInlineRange(DefaultMaxInlinePartySize))
}

func TestSeedFromExisting(t *testing.T) {
	dateIn := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	timeIn := time.Date(2024, time.June, 1, 19, 30, 0, 0, time.UTC)

	t.Run("all fields populated verbatim", func(t *testing.T) {
		selection := SeedFromExisting(&BookingSlot{
			DateIn:  &dateIn,
			TimeIn:  &timeIn,
			Pax:     ptr.Ptr("2"),
			Request: ptr.Ptr("window seat"),
		})

		require.NotNil(t, selection.Date)
		assert.True(t, selection.Date.Equal(dateIn))
		require.NotNil(t, selection.Time)
		assert.True(t, selection.Time.Equal(timeIn))
		require.NotNil(t, selection.PartySize)
		assert.Equal(t, "2", selection.PartySize.PaxString())
		assert.Equal(t, "window seat", selection.SpecialRequest)
	})

	t.Run("absent fields stay empty, nothing is invented", func(t *testing.T) {
		selection := SeedFromExisting(&BookingSlot{Pax: ptr.Ptr("9+")})

		assert.Nil(t, selection.Date)
		assert.Nil(t, selection.Time)
		require.NotNil(t, selection.PartySize)
		assert.True(t, selection.PartySize.IsLargeGroup())
		assert.Equal(t, "", selection.SpecialRequest)
	})

	t.Run("nil record yields an empty selection", func(t *testing.T) {
		selection := SeedFromExisting(nil)

		assert.Nil(t, selection.Date)
		assert.Nil(t, selection.Time)
		assert.Nil(t, selection.PartySize)
		assert.Equal(t, "", selection.SpecialRequest)
	})

	t.Run("seeded stale booking still fails validation", func(t *testing.T) {
		// Stored bookings may already be stale; seeding performs no validation
		past := time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)
		pastSlot := time.Date(2023, time.January, 10, 12, 0, 0, 0, time.UTC)

		selection := SeedFromExisting(&BookingSlot{
			DateIn: &past,
			TimeIn: &pastSlot,
			Pax:    ptr.Ptr("4"),
		})

		result := ValidateSelection(selection, testHours, DefaultIntervalMinutes, DefaultMaxInlinePartySize, testNow)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Violations, ViolationDateInPast)
	})
}
