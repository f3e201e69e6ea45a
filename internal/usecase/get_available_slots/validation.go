package get_available_slots

import (
	"fmt"
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurant id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что запрошенная дата не в прошлом
func validateDate(date, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}
	return nil
}
