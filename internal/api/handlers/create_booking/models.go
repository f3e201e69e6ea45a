package create_booking

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	createBooking "github.com/mpe-apps/MPE-ReservationService/internal/usecase/create_booking"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Поля выбора опциональны: отсутствующее поле вернется нарушением
// в ответе 422, а не ошибкой разбора запроса.
type CreateBookingRequest struct {
	RestaurantID int64   `json:"restaurantId"`
	Date         *string `json:"date,omitempty"` // "2025-10-15"
	Time         *string `json:"time,omitempty"` // "19:00"
	Pax          *string `json:"pax,omitempty"`  // "1".."8" или "9+"
	Request      *string `json:"request,omitempty"`
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
	GuestName      *string `json:"guestName,omitempty"`
	GuestPhone     *string `json:"guestPhone,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (createBooking.Request, error) {
	req := createBooking.Request{
		UserID:         userID,
		RestaurantID:   r.RestaurantID,
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

	if r.Pax != nil {
		req.Pax = *r.Pax
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
		GuestName:      resp.GuestName,
		GuestPhone:     resp.GuestPhone,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
