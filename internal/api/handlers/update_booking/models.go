package update_booking

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	updateBooking "github.com/mpe-apps/MPE-ReservationService/internal/usecase/update_booking"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// UpdateBookingRequest HTTP request model.
// nil-поле означает "оставить как есть" - клиент присылает только изменения.
type UpdateBookingRequest struct {
	Date    *string `json:"date,omitempty"` // "2025-10-15"
	Time    *string `json:"time,omitempty"` // "19:00"
	Pax     *string `json:"pax,omitempty"`  // "1".."8" или "9+"
	Request *string `json:"request,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	RestaurantID   int64   `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Pax            string  `json:"pax"`
	Status         string  `json:"status"`
	Request        *string `json:"request,omitempty"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID int64) (updateBooking.Request, error) {
	req := updateBooking.Request{
		BookingID:      bookingID,
		UserID:         userID,
		Pax:            r.Pax,
		SpecialRequest: r.Request,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return req, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		timeStr, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return req, err
		}
		anchor := time.Time{}
		if req.Date != nil {
			anchor = *req.Date
		}
		t, err := timeStr.OnDate(anchor)
		if err != nil {
			return req, err
		}
		req.Time = &t
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		RestaurantID:   resp.RestaurantID,
		RestaurantName: resp.RestaurantName,
		Date:           resp.DateIn.Format(domain.DateFormat),
		Time:           resp.TimeIn.String(),
		Pax:            resp.Pax,
		Status:         string(resp.Status),
		Request:        resp.Request,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
