package get_restaurant_config

import (
	"context"

	"github.com/mpe-apps/MPE-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	GetByRestaurant(ctx context.Context, restaurantID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
