package domain

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// BookingStatus represents the status of a table reservation
type BookingStatus string

const (
	StatusConfirmed             BookingStatus = "confirmed"
	StatusSeated                BookingStatus = "seated"
	StatusCompleted             BookingStatus = "completed"
	StatusCancelledByUser       BookingStatus = "cancelled_by_user"
	StatusCancelledByRestaurant BookingStatus = "cancelled_by_restaurant"
	StatusNoShow                BookingStatus = "no_show"
)

// Booking represents a confirmed table reservation in the system
type Booking struct {
	ID           int64
	UserID       int64
	RestaurantID int64
	DateIn       time.Time        // Дата посадки (без времени)
	TimeIn       types.TimeString // Время посадки, "19:30"
	Pax          string           // Количество гостей как строка ("4" или "9+")
	Request      *string          // Особые пожелания гостя

	// Denormalized data for history
	RestaurantName string
	GuestName      *string
	GuestPhone     *string

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByRestaurant &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can still be edited
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByRestaurant
}

// Slot returns the booking's stored slot fields in the edit-mode shape
// consumed by SeedFromExisting.
func (b *Booking) Slot() *BookingSlot {
	slot := &BookingSlot{
		Pax:     &b.Pax,
		Request: b.Request,
	}

	if !b.DateIn.IsZero() {
		d := b.DateIn
		slot.DateIn = &d
	}
	if !b.TimeIn.IsZero() {
		if t, err := b.TimeIn.OnDate(b.DateIn); err == nil {
			slot.TimeIn = &t
		}
	}

	return slot
}

// RestaurantBookingsFilter фильтр для получения бронирований ресторана
type RestaurantBookingsFilter struct {
	RestaurantID    int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования и no-show
}
