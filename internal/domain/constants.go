package domain

// Default slot configuration values.
// Opening and closing defaults apply when the restaurant catalog record
// carries no operating hours, since upstream records are not guaranteed
// complete.
const (
	DefaultOpeningHour        = 10
	DefaultClosingHour        = 22
	DefaultIntervalMinutes    = 30
	DefaultMaxInlinePartySize = 8
)

// Business validation constants
const (
	MinInlinePartySize = 1

	MinIntervalMinutes = 5
	MaxIntervalMinutes = 240

	MinPartySizeCap = 1
	MaxPartySizeCap = 50

	MaxSpecialRequestLength = 500
)

// LargePartySentinel marks a party too large for inline selection.
// It is a flag meaning "contact the restaurant directly" and must never be
// transmitted as a numeric guest count.
const LargePartySentinel = "9+"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByRestaurant,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusSeated,
	StatusCompleted,
}
