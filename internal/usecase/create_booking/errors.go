package create_booking

import (
	"errors"
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден в каталоге
	ErrRestaurantNotFound = errors.New("create_booking: restaurant not found")

	// ErrDuplicateBooking возвращается при активном бронировании на тот же слот
	ErrDuplicateBooking = errors.New("create_booking: active booking for this slot already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError содержит упорядоченный список нарушений выбора бронирования
type ValidationError struct {
	Violations []domain.ViolationReason
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_booking: selection validation failed: %v", e.Violations)
}
