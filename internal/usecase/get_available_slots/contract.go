package get_available_slots

import (
	"context"
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
)

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID int64) (*domain.RestaurantSlotsConfig, error)
}

// RestaurantServiceClient интерфейс клиента каталога ресторанов
type RestaurantServiceClient interface {
	GetRestaurant(ctx context.Context, restaurantID int64) (*restaurantservice.Restaurant, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
