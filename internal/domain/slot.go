package domain

import "time"

// GenerateSlots computes the ordered sequence of bookable start times for a
// restaurant on the given calendar date. The walk starts at openingHour:00,
// advances in intervalMinutes steps, and the end bound is inclusive: a slot
// exactly at closingHour:00 is emitted.
//
// The result depends only on the arguments — no clock is consulted — so the
// sequence is deterministic and safe to regenerate on every date change.
//
// Degenerate inputs never fail:
//   - zero date (no date chosen yet) → empty sequence
//   - openingHour > closingHour (malformed window) → empty sequence
//   - non-positive interval → empty sequence
func GenerateSlots(hours RestaurantHours, date time.Time, intervalMinutes int) []time.Time {
	if date.IsZero() {
		return []time.Time{}
	}
	if intervalMinutes <= 0 {
		return []time.Time{}
	}
	if !hours.IsValid() {
		return []time.Time{}
	}

	cursor := time.Date(date.Year(), date.Month(), date.Day(), hours.OpeningHour, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), hours.ClosingHour, 0, 0, 0, date.Location())

	slots := make([]time.Time, 0, (hours.ClosingHour-hours.OpeningHour)*60/intervalMinutes+1)
	for !cursor.After(end) {
		slots = append(slots, cursor)
		cursor = cursor.Add(time.Duration(intervalMinutes) * time.Minute)
	}

	return slots
}

// SlotExists reports whether candidate is one of the slots GenerateSlots
// produces for the given date and hours. Comparison is by calendar date and
// wall-clock minute, so values constructed in different locations with the
// same local reading are treated as equal.
func SlotExists(hours RestaurantHours, date time.Time, intervalMinutes int, candidate time.Time) bool {
	for _, slot := range GenerateSlots(hours, date, intervalMinutes) {
		if sameMinute(slot, candidate) {
			return true
		}
	}
	return false
}

// sameMinute compares two timestamps by local date, hour and minute
func sameMinute(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute()
}

// IsDateInPast reports whether date falls on an earlier calendar day than now
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay reports whether two timestamps fall on the same calendar day
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
