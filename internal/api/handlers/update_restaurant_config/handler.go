package update_restaurant_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mpe-apps/MPE-ReservationService/internal/api/handlers"
	"github.com/mpe-apps/MPE-ReservationService/internal/api/middleware"
	configService "github.com/mpe-apps/MPE-ReservationService/internal/service/config"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgRestaurantNotFound  = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
	msgInvalidConfig       = "некорректные параметры конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurants/{restaurantId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/config - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /restaurants/{id}/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Обновляем конфигурацию (сервис сам проверит права менеджера)
	config, err := h.service.Update(r.Context(), restaurantID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id}/config - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("PUT /restaurants/{id}/config - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("PUT /restaurants/{id}/config - Invalid config: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /restaurants/{id}/config - Failed to update config: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/config - Config updated successfully: restaurant_id=%d, user_id=%d",
		restaurantID, userID)
	handlers.RespondJSON(w, http.StatusOK, config)
}
