package update_restaurant_config

import (
	"context"

	"github.com/mpe-apps/MPE-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	Update(ctx context.Context, restaurantID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
