package domain

// ViolationReason is a symbolic reason a booking selection is not yet
// submittable. The engine never produces human-readable text; the UI layer
// maps each reason to a message.
type ViolationReason string

const (
	ViolationMissingDate             ViolationReason = "MissingDate"
	ViolationDateInPast              ViolationReason = "DateInPast"
	ViolationMissingTime             ViolationReason = "MissingTime"
	ViolationTimeNotAvailableForDate ViolationReason = "TimeNotAvailableForDate"
	ViolationMissingPartySize        ViolationReason = "MissingPartySize"
	ViolationInvalidPartySize        ViolationReason = "InvalidPartySize"
)

// ValidationResult is the outcome of validating a BookingSlotSelection.
// Violations come in a stable order (date, time, party size) so UI
// rendering and tests are reproducible.
type ValidationResult struct {
	Valid      bool
	Violations []ViolationReason
}
