package get_available_slots

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	getAvailableSlots "github.com/mpe-apps/MPE-ReservationService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string   `json:"date"` // "2025-10-15"
	RestaurantID    int64    `json:"restaurantId"`
	RestaurantName  string   `json:"restaurantName"`
	OpeningHour     int      `json:"openingHour"`
	ClosingHour     int      `json:"closingHour"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Slots           []string `json:"slots"` // ["10:00", "10:30", ...]
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(userID, restaurantID int64, dateStr string) (getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return getAvailableSlots.Request{}, err
	}

	return getAvailableSlots.Request{
		UserID:       userID,
		RestaurantID: restaurantID,
		Date:         date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		RestaurantID:    resp.RestaurantID,
		RestaurantName:  resp.RestaurantName,
		OpeningHour:     resp.OpeningHour,
		ClosingHour:     resp.ClosingHour,
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}
