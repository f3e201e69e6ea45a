package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mpe-apps/MPE-ReservationService/internal/api/handlers"
	"github.com/mpe-apps/MPE-ReservationService/internal/api/middleware"
	updateBooking "github.com/mpe-apps/MPE-ReservationService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgRestaurantNotFound = "ресторан не найден"
	msgForbidden          = "доступ запрещен"
	msgCannotBeUpdated    = "бронирование нельзя изменить в текущем статусе"
	msgDuplicateBooking   = "у вас уже есть активное бронирование на этот слот"
	msgSelectionInvalid   = "выбор бронирования не прошел проверку"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var vErr *updateBooking.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("PUT /bookings/{id} - Selection invalid: booking_id=%d, user_id=%d, violations=%v",
				bookingID, userID, vErr.Violations)
			handlers.RespondValidationError(w, msgSelectionInvalid, violationCodes(vErr))

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrCannotBeUpdated):
			h.logger.Warn("PUT /bookings/{id} - Cannot be updated: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotBeUpdated)

		case errors.Is(err, updateBooking.ErrDuplicateBooking):
			h.logger.Warn("PUT /bookings/{id} - Duplicate booking: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, updateBooking.ErrRestaurantNotFound):
			h.logger.Warn("PUT /bookings/{id} - Restaurant not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// violationCodes конвертирует нарушения в строковые коды для ответа
func violationCodes(vErr *updateBooking.ValidationError) []string {
	codes := make([]string, 0, len(vErr.Violations))
	for _, v := range vErr.Violations {
		codes = append(codes, string(v))
	}
	return codes
}
