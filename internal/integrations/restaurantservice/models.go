package restaurantservice

// Restaurant модель ресторана из каталога
// openingHour/closingHour могут отсутствовать - записи каталога не всегда полные,
// в этом случае применяются дефолтные часы работы (10:00-22:00)
type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"restuarentName"` // поле каталога с историческим написанием
	Address     string `json:"address"`
	Image       string `json:"image"`
	OpeningHour *int   `json:"openingHour,omitempty"`
	ClosingHour *int   `json:"closingHour,omitempty"`

	// ManagerIDs пользователи с правами управления бронированиями ресторана
	ManagerIDs []int64 `json:"managerIds,omitempty"`
}

// ErrorResponse модель ошибки от каталога ресторанов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
