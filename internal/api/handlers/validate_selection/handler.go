package validate_selection

import (
	"errors"
	"net/http"

	"github.com/mpe-apps/MPE-ReservationService/internal/api/handlers"
	"github.com/mpe-apps/MPE-ReservationService/internal/api/middleware"
	validateSelection "github.com/mpe-apps/MPE-ReservationService/internal/usecase/validate_selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRestaurantNotFound = "ресторан не найден"
	msgInvalidRestaurant  = "некорректный ID ресторана"
)

type Handler struct {
	useCase ValidateSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/validate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateSelection.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings/validate - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, validateSelection.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: restaurant_id=%d, error=%v", req.RestaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidRestaurant)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate selection: restaurant_id=%d, error=%v",
				req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Результат проверки - это успешный ответ, даже когда выбор невалиден
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/validate - Selection validated: user_id=%d, restaurant_id=%d, valid=%t",
		userID, req.RestaurantID, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, response)
}
