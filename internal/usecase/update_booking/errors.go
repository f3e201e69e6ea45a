package update_booking

import (
	"errors"
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается при попытке изменить чужое бронирование
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrCannotBeUpdated возвращается, когда бронирование нельзя изменить
	// в текущем статусе
	ErrCannotBeUpdated = errors.New("update_booking: booking cannot be updated")

	// ErrDuplicateBooking возвращается, когда новый слот уже занят другим
	// активным бронированием пользователя
	ErrDuplicateBooking = errors.New("update_booking: duplicate active booking for this slot")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден в каталоге
	ErrRestaurantNotFound = errors.New("update_booking: restaurant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

// ValidationError содержит упорядоченный список нарушений выбора бронирования
type ValidationError struct {
	Violations []domain.ViolationReason
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("update_booking: selection validation failed: %v", e.Violations)
}
