package create_booking

import (
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

// validateRequest проверяет структурную корректность запроса.
// Содержимое выбора (дата, время, количество гостей) проверяется
// доменными правилами и попадает в ValidationError, а не сюда.
func validateRequest(req Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurant id must be positive", ErrInvalidInput)
	}
	if req.SpecialRequest != nil && len(*req.SpecialRequest) > domain.MaxSpecialRequestLength {
		return fmt.Errorf("%w: special request exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestLength)
	}
	return nil
}
