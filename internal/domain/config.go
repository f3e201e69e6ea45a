package domain

import "time"

// RestaurantSlotsConfig represents the per-restaurant slot configuration.
// Hour overrides, when set, take precedence over the catalog record's
// operating hours; absent values fall back to the catalog and then to the
// documented defaults.
type RestaurantSlotsConfig struct {
	ID                  int64
	RestaurantID        int64
	IntervalMinutes     int
	MaxInlinePartySize  int
	OpeningHourOverride *int // NULL = use catalog hours
	ClosingHourOverride *int // NULL = use catalog hours
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasHourOverride returns true if either service-window bound is overridden
func (c *RestaurantSlotsConfig) HasHourOverride() bool {
	return c.OpeningHourOverride != nil || c.ClosingHourOverride != nil
}

// EffectiveHours resolves the service window: override first, then the
// optional catalog hours, then the defaults.
func (c *RestaurantSlotsConfig) EffectiveHours(catalogOpening, catalogClosing *int) RestaurantHours {
	opening := catalogOpening
	if c.OpeningHourOverride != nil {
		opening = c.OpeningHourOverride
	}
	closing := catalogClosing
	if c.ClosingHourOverride != nil {
		closing = c.ClosingHourOverride
	}
	return NormalizeHours(opening, closing)
}

// DefaultSlotsConfig returns the configuration used when a restaurant has
// no stored record.
func DefaultSlotsConfig(restaurantID int64) *RestaurantSlotsConfig {
	return &RestaurantSlotsConfig{
		RestaurantID:       restaurantID,
		IntervalMinutes:    DefaultIntervalMinutes,
		MaxInlinePartySize: DefaultMaxInlinePartySize,
	}
}
