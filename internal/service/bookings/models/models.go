package models

import (
	"errors"
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetRestaurantBookingsRequest запрос на получение бронирований ресторана
type GetRestaurantBookingsRequest struct {
	UserID          int64      `json:"userId"`
	RestaurantID    int64      `json:"restaurantId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRestaurantBookingsRequest) ToDomainFilter() (domain.RestaurantBookingsFilter, error) {
	filter := domain.RestaurantBookingsFilter{
		RestaurantID:    r.RestaurantID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	RestaurantID   int64  `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	DateIn         string `json:"dateIn"` // "2025-10-15"
	TimeIn         string `json:"timeIn"` // "19:00"
	Pax            string `json:"pax"`    // "1".."8" или "9+"
	Status         string `json:"status"`

	// Денормализованные данные гостя из профиля
	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	Request    *string `json:"request,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		RestaurantID:       b.RestaurantID,
		RestaurantName:     b.RestaurantName,
		DateIn:             b.DateIn.Format(domain.DateFormat),
		TimeIn:             b.TimeIn.String(),
		Pax:                b.Pax,
		Status:             string(b.Status),
		GuestName:          b.GuestName,
		GuestPhone:         b.GuestPhone,
		Request:            b.Request,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusSeated,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByRestaurant,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
