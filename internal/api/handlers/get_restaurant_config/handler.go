package get_restaurant_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mpe-apps/MPE-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
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

// Handle GET /api/v1/restaurants/{restaurantId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantIDStr := vars["restaurantId"]

	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/config - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Получаем конфигурацию (при отсутствии вернутся значения по умолчанию)
	config, err := h.service.GetByRestaurant(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("GET /restaurants/{id}/config - Failed to get config: restaurant_id=%d, error=%v",
			restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restaurants/{id}/config - Config retrieved successfully: restaurant_id=%d, is_default=%t",
		restaurantID, config.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, config)
}
