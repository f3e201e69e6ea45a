package domain

// RestaurantHours describes one restaurant's service window used for slot
// generation. Hours are local hours-of-day; the closing hour itself is the
// last bookable slot start. Overnight wraparound is not modeled.
type RestaurantHours struct {
	OpeningHour int
	ClosingHour int
}

// IsValid reports whether the window can produce slots
func (h RestaurantHours) IsValid() bool {
	return h.OpeningHour >= 0 && h.OpeningHour <= 23 &&
		h.ClosingHour >= 0 && h.ClosingHour <= 23 &&
		h.OpeningHour <= h.ClosingHour
}

// NormalizeHours builds a service window from optional catalog values.
// A missing or out-of-range bound falls back to the documented default
// (10:00 / 22:00) rather than failing, since upstream restaurant records
// are not guaranteed complete.
func NormalizeHours(openingHour, closingHour *int) RestaurantHours {
	hours := RestaurantHours{
		OpeningHour: DefaultOpeningHour,
		ClosingHour: DefaultClosingHour,
	}

	if openingHour != nil && *openingHour >= 0 && *openingHour <= 23 {
		hours.OpeningHour = *openingHour
	}
	if closingHour != nil && *closingHour >= 0 && *closingHour <= 23 {
		hours.ClosingHour = *closingHour
	}

	return hours
}
