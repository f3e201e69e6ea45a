package bookings

import (
	"context"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
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
