package validate_selection

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

// Request модель запроса на проверку выбора бронирования.
// Поля Date и Time опциональны: отсутствие поля — это нарушение,
// которое должно попасть в список, а не ошибка запроса.
type Request struct {
	UserID         int64      // ID пользователя (для логирования)
	RestaurantID   int64      // ID ресторана
	Date           *time.Time // Выбранная дата (nil — не выбрана)
	Time           *time.Time // Выбранное время (nil — не выбрано)
	Pax            string     // Количество гостей как строка ("" — не выбрано)
	SpecialRequest string     // Особые пожелания (опционально)
}

// Response модель ответа с результатом проверки выбора
type Response struct {
	Valid      bool                     // true, если нарушений нет
	Violations []domain.ViolationReason // Упорядоченный список нарушений
}
