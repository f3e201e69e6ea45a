package create_booking

import (
	"errors"
	"net/http"

	"github.com/mpe-apps/MPE-ReservationService/internal/api/handlers"
	"github.com/mpe-apps/MPE-ReservationService/internal/api/middleware"
	createBooking "github.com/mpe-apps/MPE-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRestaurantNotFound = "ресторан не найден"
	msgDuplicateBooking   = "у вас уже есть активное бронирование на этот слот"
	msgSelectionInvalid   = "выбор бронирования не прошел проверку"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var vErr *createBooking.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - Selection invalid: user_id=%d, restaurant_id=%d, violations=%v",
				userID, req.RestaurantID, vErr.Violations)
			handlers.RespondValidationError(w, msgSelectionInvalid, violationCodes(vErr))

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: user_id=%d, restaurant_id=%d",
				userID, req.RestaurantID)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, restaurant_id=%d, error=%v",
				userID, req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, restaurant_id=%d",
		result.ID, userID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// violationCodes конвертирует нарушения в строковые коды для ответа
func violationCodes(vErr *createBooking.ValidationError) []string {
	codes := make([]string, 0, len(vErr.Violations))
	for _, v := range vErr.Violations {
		codes = append(codes, string(v))
	}
	return codes
}
