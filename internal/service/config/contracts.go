package config

import (
	"context"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
)

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID int64) (*domain.RestaurantSlotsConfig, error)
	Upsert(ctx context.Context, cfg *domain.RestaurantSlotsConfig) (*domain.RestaurantSlotsConfig, error)
}

// RestaurantServiceClient интерфейс клиента каталога ресторанов
type RestaurantServiceClient interface {
	GetRestaurant(ctx context.Context, restaurantID int64) (*restaurantservice.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
