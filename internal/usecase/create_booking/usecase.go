package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	bookingstorage "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/booking"
	configstorage "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/config"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// UseCase сценарий создания бронирования столика
type UseCase struct {
	bookingRepo      BookingRepository
	configRepo       ConfigRepository
	restaurantClient RestaurantServiceClient
	userClient       UserServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	restaurantClient RestaurantServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		configRepo:       configRepo,
		restaurantClient: restaurantClient,
		userClient:       userClient,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("[CreateBooking] Создание бронирования: userID=%d, restaurantID=%d",
		req.UserID, req.RestaurantID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[CreateBooking] Ошибка валидации запроса: %v", err)
		return nil, err
	}

	// 2. Получение данных ресторана из каталога
	restaurant, err := uc.restaurantClient.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantservice.ErrRestaurantNotFound) {
			uc.logger.Warn("[CreateBooking] Ресторан не найден: restaurantID=%d", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("[CreateBooking] Ошибка получения ресторана: restaurantID=%d, error=%v",
			req.RestaurantID, err)
		return nil, fmt.Errorf("%w: get restaurant: %v", ErrInternal, err)
	}

	// 3. Получение профиля гостя. Недоступность сервиса профилей не
	// блокирует создание бронирования: контакты просто останутся пустыми.
	profile, err := uc.userClient.GetProfileWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("[CreateBooking] Профиль недоступен, бронирование без контактов: userID=%d, error=%v",
			req.UserID, err)
		profile = nil
	}

	now := uc.timeProvider.Now()

	var created *domain.Booking

	// 4. Проверка выбора и запись выполняются в SERIALIZABLE транзакции,
	// чтобы два одновременных запроса не создали дубликат на один слот.
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Конфигурация слотов (при отсутствии — значения по умолчанию)
		cfg, err := uc.configRepo.GetByRestaurantID(txCtx, req.RestaurantID)
		if err != nil {
			if errors.Is(err, configstorage.ErrConfigNotFound) {
				cfg = domain.DefaultSlotsConfig(req.RestaurantID)
			} else {
				return fmt.Errorf("%w: get slots config: %v", ErrInternal, err)
			}
		}

		// 4.2. Проверка выбора доменными правилами
		selection := domain.BookingSlotSelection{
			Date:      req.Date,
			Time:      req.Time,
			PartySize: domain.ParsePax(req.Pax),
		}
		if req.SpecialRequest != nil {
			selection.SpecialRequest = *req.SpecialRequest
		}

		hours := cfg.EffectiveHours(restaurant.OpeningHour, restaurant.ClosingHour)
		result := domain.ValidateSelection(selection, hours, cfg.IntervalMinutes, cfg.MaxInlinePartySize, now)
		if !result.Valid {
			return &ValidationError{Violations: result.Violations}
		}

		timeIn := types.NewTimeString(*selection.Time)

		// 4.3. Проверка на активный дубликат того же слота
		duplicate, err := uc.bookingRepo.FindActiveDuplicate(txCtx, req.UserID, req.RestaurantID, *selection.Date, timeIn)
		if err != nil && !errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return fmt.Errorf("%w: find duplicate: %v", ErrInternal, err)
		}
		if duplicate != nil {
			return ErrDuplicateBooking
		}

		// 4.4. Сборка и сохранение бронирования
		booking := &domain.Booking{
			UserID:         req.UserID,
			RestaurantID:   req.RestaurantID,
			RestaurantName: restaurant.Name,
			DateIn:         *selection.Date,
			TimeIn:         timeIn,
			Pax:            selection.PartySize.PaxString(),
			Request:        req.SpecialRequest,
			Status:         domain.StatusConfirmed,
		}
		if profile != nil {
			name := profile.FullName()
			booking.GuestName = &name
			booking.GuestPhone = &profile.Cellphone
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		var vErr *ValidationError
		switch {
		case errors.As(txErr, &vErr):
			uc.logger.Warn("[CreateBooking] Выбор не прошел проверку: userID=%d, violations=%v",
				req.UserID, vErr.Violations)
		case errors.Is(txErr, ErrDuplicateBooking):
			uc.logger.Warn("[CreateBooking] Обнаружен дубликат бронирования: userID=%d, restaurantID=%d",
				req.UserID, req.RestaurantID)
		default:
			uc.logger.Error("[CreateBooking] Ошибка транзакции: userID=%d, error=%v", req.UserID, txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("[CreateBooking] Бронирование создано: bookingID=%d, userID=%d, restaurantID=%d",
		created.ID, req.UserID, req.RestaurantID)

	return responseFromBooking(created), nil
}
