package update_booking

import (
	"context"
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindActiveDuplicate(ctx context.Context, userID, restaurantID int64, dateIn time.Time, timeIn types.TimeString) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID int64) (*domain.RestaurantSlotsConfig, error)
}

// RestaurantServiceClient интерфейс клиента каталога ресторанов
type RestaurantServiceClient interface {
	GetRestaurant(ctx context.Context, restaurantID int64) (*restaurantservice.Restaurant, error)
}

// TransactionManager интерфейс для выполнения функций внутри транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
