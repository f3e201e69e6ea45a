package create_booking

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Поля выбора опциональны: отсутствующее поле превращается в нарушение
// в ValidationError, а не в ошибку разбора запроса.
type Request struct {
	UserID         int64      // ID пользователя, создающего бронирование
	RestaurantID   int64      // ID ресторана
	Date           *time.Time // Выбранная дата (nil — не выбрана)
	Time           *time.Time // Выбранное время (nil — не выбрано)
	Pax            string     // Количество гостей как строка ("" — не выбрано)
	SpecialRequest *string    // Особые пожелания (опционально)
}

// Response модель ответа с данными созданного бронирования
type Response struct {
	ID             int64                // ID созданного бронирования
	UserID         int64                // ID пользователя
	RestaurantID   int64                // ID ресторана
	RestaurantName string               // Название ресторана
	DateIn         time.Time            // Дата бронирования
	TimeIn         types.TimeString     // Время бронирования
	Pax            string               // Количество гостей ("1".."8" или "9+")
	Request        *string              // Особые пожелания
	GuestName      *string              // Имя гостя из профиля
	GuestPhone     *string              // Телефон гостя из профиля
	Status         domain.BookingStatus // Статус бронирования
	CreatedAt      time.Time            // Время создания записи
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
		GuestName:      b.GuestName,
		GuestPhone:     b.GuestPhone,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}
