package get_available_slots

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID       int64     // ID пользователя (для логирования, не влияет на результат)
	RestaurantID int64     // ID ресторана
	Date         time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	RestaurantID    int64              // ID ресторана
	RestaurantName  string             // Название ресторана
	OpeningHour     int                // Начало окна обслуживания
	ClosingHour     int                // Конец окна обслуживания
	IntervalMinutes int                // Шаг слотов в минутах
	Slots           []types.TimeString // Список времен начала слотов
}
