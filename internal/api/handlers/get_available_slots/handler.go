package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mpe-apps/MPE-ReservationService/internal/api/handlers"
	"github.com/mpe-apps/MPE-ReservationService/internal/api/middleware"
	getAvailableSlots "github.com/mpe-apps/MPE-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast          = "дата не может быть в прошлом"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем restaurantId из URL
	restaurantIDStr := vars["restaurantId"]
	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-slots - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /restaurants/{id}/available-slots - Missing date: restaurant_id=%d", restaurantID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// userID опционален - слоты доступны и неаутентифицированным клиентам
	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, restaurantID, dateStr)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/available-slots - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /restaurants/{id}/available-slots - Date in past: restaurant_id=%d, date=%s",
				restaurantID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/available-slots - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidRestaurantID)

		default:
			h.logger.Error("GET /restaurants/{id}/available-slots - Failed to get slots: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /restaurants/{id}/available-slots - Slots retrieved successfully: restaurant_id=%d, date=%s, slots_count=%d",
		restaurantID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
