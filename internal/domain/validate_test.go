package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mpe-apps/MPE-ReservationService/pkg/ptr"
)

var (
	testHours = RestaurantHours{OpeningHour: 10, ClosingHour: 13}
	testNow   = time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)
)

func at(y int, m time.Month, d, hour, minute int) *time.Time {
	t := time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name      string
		selection BookingSlotSelection
		want      []ViolationReason
	}{
		{
			name:      "empty selection reports all three missing fields",
			selection: BookingSlotSelection{},
			want: []ViolationReason{
				ViolationMissingDate,
				ViolationMissingTime,
				ViolationMissingPartySize,
			},
		},
		{
			name: "complete valid selection",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("4"),
			},
			want: []ViolationReason{},
		},
		{
			name: "date in the past is reported regardless of other fields",
			selection: BookingSlotSelection{
				Date:      at(2024, time.May, 19, 0, 0),
				Time:      at(2024, time.May, 19, 12, 0),
				PartySize: ParsePax("4"),
			},
			want: []ViolationReason{ViolationDateInPast},
		},
		{
			name: "time outside service window",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 14, 0),
				PartySize: ParsePax("4"),
			},
			want: []ViolationReason{ViolationTimeNotAvailableForDate},
		},
		{
			name: "stale time left over from a previous date selection",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 2, 0, 0),
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("4"),
			},
			want: []ViolationReason{ViolationTimeNotAvailableForDate},
		},
		{
			name: "closing-hour slot is bookable",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 13, 0),
				PartySize: ParsePax("2"),
			},
			want: []ViolationReason{},
		},
		{
			name: "large-party sentinel is submittable",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("9+"),
			},
			want: []ViolationReason{},
		},
		{
			name: "zero party size",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("0"),
			},
			want: []ViolationReason{ViolationInvalidPartySize},
		},
		{
			name: "negative party size",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("-3"),
			},
			want: []ViolationReason{ViolationInvalidPartySize},
		},
		{
			name: "non-numeric party size without sentinel",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("many"),
			},
			want: []ViolationReason{ViolationInvalidPartySize},
		},
		{
			name: "count above the inline cap without sentinel",
			selection: BookingSlotSelection{
				Date:      at(2024, time.June, 1, 0, 0),
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("12"),
			},
			want: []ViolationReason{ViolationInvalidPartySize},
		},
		{
			name: "violations come in stable date-time-party order",
			selection: BookingSlotSelection{
				Date:      at(2024, time.May, 1, 0, 0),
				Time:      at(2024, time.May, 1, 3, 0),
				PartySize: ParsePax("0"),
			},
			want: []ViolationReason{
				ViolationDateInPast,
				ViolationTimeNotAvailableForDate,
				ViolationInvalidPartySize,
			},
		},
		{
			name: "time present without date is not checked against slots",
			selection: BookingSlotSelection{
				Time:      at(2024, time.June, 1, 12, 0),
				PartySize: ParsePax("4"),
			},
			want: []ViolationReason{ViolationMissingDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSelection(tt.selection, testHours, DefaultIntervalMinutes, DefaultMaxInlinePartySize, testNow)

			assert.Equal(t, tt.want, result.Violations)
			assert.Equal(t, len(tt.want) == 0, result.Valid)
		})
	}
}

func TestValidateSelection_DoesNotMutateSelection(t *testing.T) {
	selection := BookingSlotSelection{
		Date:           at(2024, time.June, 1, 0, 0),
		Time:           at(2024, time.June, 1, 12, 0),
		PartySize:      ParsePax("4"),
		SpecialRequest: "window seat",
	}

	before := selection
	_ = ValidateSelection(selection, testHours, DefaultIntervalMinutes, DefaultMaxInlinePartySize, testNow)

	assert.Equal(t, before, selection)
}

func TestValidateSelection_TodayIsNotInPast(t *testing.T) {
	// Validation at 09:00 on the selected day itself
	selection := BookingSlotSelection{
		Date:      ptr.Ptr(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)),
		Time:      at(2024, time.May, 20, 11, 30),
		PartySize: ParsePax("2"),
	}

	result := ValidateSelection(selection, testHours, DefaultIntervalMinutes, DefaultMaxInlinePartySize, testNow)
	assert.True(t, result.Valid)
}
