package update_booking

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// Request модель запроса на изменение бронирования.
// nil-поле означает "оставить как есть": редактирование начинается
// с текущих значений бронирования, клиент присылает только изменения.
type Request struct {
	BookingID      int64      // ID изменяемого бронирования
	UserID         int64      // ID пользователя (владелец бронирования)
	Date           *time.Time // Новая дата (nil — без изменений)
	Time           *time.Time // Новое время (nil — без изменений)
	Pax            *string    // Новое количество гостей (nil — без изменений)
	SpecialRequest *string    // Новые пожелания (nil — без изменений)
}

// Response модель ответа с данными обновленного бронирования
type Response struct {
	ID             int64                // ID бронирования
	UserID         int64                // ID пользователя
	RestaurantID   int64                // ID ресторана
	RestaurantName string               // Название ресторана
	DateIn         time.Time            // Дата бронирования
	TimeIn         types.TimeString     // Время бронирования
	Pax            string               // Количество гостей ("1".."8" или "9+")
	Request        *string              // Особые пожелания
	Status         domain.BookingStatus // Статус бронирования
	UpdatedAt      time.Time            // Время последнего изменения
}

// responseFromBooking собирает Response из доменной модели бронирования
func responseFromBooking(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		UserID:         b.UserID,
		RestaurantID:   b.RestaurantID,
		RestaurantName: b.RestaurantName,
		DateIn:         b.DateIn,
		TimeIn:         b.TimeIn,
		Pax:            b.Pax,
		Request:        b.Request,
		Status:         b.Status,
		UpdatedAt:      b.UpdatedAt,
	}
}
