package validate_selection

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден в каталоге
	ErrRestaurantNotFound = errors.New("validate_selection: restaurant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_selection: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_selection: internal error")
)
