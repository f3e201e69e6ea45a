package get_restaurant_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mpe-apps/MPE-ReservationService/internal/api/handlers"
	"github.com/mpe-apps/MPE-ReservationService/internal/api/middleware"
	"github.com/mpe-apps/MPE-ReservationService/internal/service/bookings"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidFilter       = "некорректные параметры фильтрации"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgRestaurantNotFound  = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/bookings - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /restaurants/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Собираем фильтр из query параметров
	req, err := ParseQuery(userID, restaurantID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/bookings - Invalid filter: restaurant_id=%d, error=%v",
			restaurantID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	// Получаем бронирования (сервис сам проверит права менеджера)
	result, err := h.service.GetRestaurantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/bookings - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /restaurants/{id}/bookings - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/bookings - Invalid filter: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /restaurants/{id}/bookings - Failed to get bookings: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/bookings - Bookings retrieved successfully: restaurant_id=%d, count=%d",
		restaurantID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
