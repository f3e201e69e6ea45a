package domain

import "time"

// ValidateSelection checks whether a selection is complete and internally
// consistent enough to submit. Every violation is collected — not just the
// first — so the caller can mark all offending fields at once.
//
// Rules, in reporting order:
//   - date:  present, and not before the current local calendar date
//   - time:  present, and one of the slots GenerateSlots currently produces
//     for the selected date (a stale time left over from a previous
//     date selection is invalid); only checked when a date is set
//   - party: present, and either the large-group flag or a count within
//     [MinInlinePartySize, maxPartySize]
//
// "now" is an explicit input to keep validation deterministic under test.
// The function is pure: no clock, no I/O, no mutation of the selection.
func ValidateSelection(
	selection BookingSlotSelection,
	hours RestaurantHours,
	intervalMinutes int,
	maxPartySize int,
	now time.Time,
) ValidationResult {
	violations := make([]ViolationReason, 0)

	if selection.Date == nil {
		violations = append(violations, ViolationMissingDate)
	} else if IsDateInPast(*selection.Date, now) {
		violations = append(violations, ViolationDateInPast)
	}

	if selection.Time == nil {
		violations = append(violations, ViolationMissingTime)
	} else if selection.Date != nil {
		if !SlotExists(hours, *selection.Date, intervalMinutes, *selection.Time) {
			violations = append(violations, ViolationTimeNotAvailableForDate)
		}
	}

	if selection.PartySize == nil {
		violations = append(violations, ViolationMissingPartySize)
	} else if !selection.PartySize.InInlineRange(maxPartySize) {
		violations = append(violations, ViolationInvalidPartySize)
	}

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
