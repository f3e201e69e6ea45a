package update_booking

import (
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

// validateRequest проверяет структурную корректность запроса
func validateRequest(req Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.SpecialRequest != nil && len(*req.SpecialRequest) > domain.MaxSpecialRequestLength {
		return fmt.Errorf("%w: special request exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestLength)
	}
	return nil
}
