package domain

import (
	"strconv"
	"strings"
	"time"
)

type partySizeKind int

const (
	partyCount partySizeKind = iota
	partyLargeGroup
	partyInvalid
)

// PartySize is a tagged guest-count variant: either a concrete count or the
// large-group flag ("9+"). The wire format stringifies both into one pax
// field, but internally the sentinel never leaks into arithmetic.
type PartySize struct {
	kind  partySizeKind
	count int
}

// NewPartyCount creates a concrete guest count
func NewPartyCount(n int) PartySize {
	return PartySize{kind: partyCount, count: n}
}

// NewLargeGroup creates the large-group flag
func NewLargeGroup() PartySize {
	return PartySize{kind: partyLargeGroup}
}

// ParsePax converts a wire pax string into a PartySize. The empty string
// means "not selected" and yields nil. Unparseable values are preserved as
// an invalid PartySize so validation can report InvalidPartySize instead of
// the parse failing the whole request.
func ParsePax(pax string) *PartySize {
	pax = strings.TrimSpace(pax)
	if pax == "" {
		return nil
	}
	if pax == LargePartySentinel {
		p := NewLargeGroup()
		return &p
	}
	n, err := strconv.Atoi(pax)
	if err != nil {
		return &PartySize{kind: partyInvalid}
	}
	p := NewPartyCount(n)
	return &p
}

// IsLargeGroup reports whether the value is the large-group flag
func (p PartySize) IsLargeGroup() bool {
	return p.kind == partyLargeGroup
}

// Count returns the concrete guest count; ok is false for the large-group
// flag and for invalid values.
func (p PartySize) Count() (n int, ok bool) {
	if p.kind != partyCount {
		return 0, false
	}
	return p.count, true
}

// InInlineRange reports whether the value is submittable with the given cap:
// either the large-group flag or a count within [MinInlinePartySize, cap].
func (p PartySize) InInlineRange(cap int) bool {
	switch p.kind {
	case partyLargeGroup:
		return true
	case partyCount:
		return p.count >= MinInlinePartySize && p.count <= cap
	default:
		return false
	}
}

// PaxString returns the wire representation: the stringified count, or the
// sentinel for the large-group flag. Invalid values stringify to "" and are
// expected to be rejected by validation before ever reaching the wire.
func (p PartySize) PaxString() string {
	switch p.kind {
	case partyLargeGroup:
		return LargePartySentinel
	case partyCount:
		return strconv.Itoa(p.count)
	default:
		return ""
	}
}

// BookingSlotSelection is the aggregate a guest builds on the booking
// screen: a calendar date, a chosen slot, a party size and an optional
// special request. Fields are nil until picked.
type BookingSlotSelection struct {
	Date           *time.Time
	Time           *time.Time
	PartySize      *PartySize
	SpecialRequest string
}

// BookingSlot is the existing-booking shape received from storage when a
// booking is opened for editing. Any field may be absent.
type BookingSlot struct {
	DateIn  *time.Time
	TimeIn  *time.Time
	Pax     *string
	Request *string
}

// SeedFromExisting maps an existing booking record into a selection so slot
// generation and validation work the same for create and edit flows.
// Fields are copied verbatim; absent fields stay empty. No validation
// happens here — stored bookings may already be stale (a date now in the
// past), and the caller must still validate before submission.
func SeedFromExisting(existing *BookingSlot) BookingSlotSelection {
	var selection BookingSlotSelection
	if existing == nil {
		return selection
	}

	if existing.DateIn != nil {
		d := *existing.DateIn
		selection.Date = &d
	}
	if existing.TimeIn != nil {
		t := *existing.TimeIn
		selection.Time = &t
	}
	if existing.Pax != nil {
		selection.PartySize = ParsePax(*existing.Pax)
	}
	if existing.Request != nil {
		selection.SpecialRequest = *existing.Request
	}

	return selection
}
