package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/config"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// UseCase сценарий получения доступных слотов бронирования на дату
type UseCase struct {
	configRepo       ConfigRepository
	restaurantClient RestaurantServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	configRepo ConfigRepository,
	restaurantClient RestaurantServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:       configRepo,
		restaurantClient: restaurantClient,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute выполняет получение доступных слотов для ресторана на дату
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("[GetAvailableSlots] Запрос слотов: userID=%d, restaurantID=%d, date=%s",
		req.UserID, req.RestaurantID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[GetAvailableSlots] Ошибка валидации запроса: %v", err)
		return nil, err
	}

	// 2. Проверка, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("[GetAvailableSlots] Дата в прошлом: restaurantID=%d, date=%s",
			req.RestaurantID, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получение данных ресторана из каталога
	restaurant, err := uc.restaurantClient.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantservice.ErrRestaurantNotFound) {
			uc.logger.Warn("[GetAvailableSlots] Ресторан не найден: restaurantID=%d", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("[GetAvailableSlots] Ошибка получения ресторана: restaurantID=%d, error=%v",
			req.RestaurantID, err)
		return nil, fmt.Errorf("%w: get restaurant: %v", ErrInternal, err)
	}

	// 4. Получение конфигурации слотов (при отсутствии — значения по умолчанию)
	cfg, err := uc.configRepo.GetByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg = domain.DefaultSlotsConfig(req.RestaurantID)
		} else {
			uc.logger.Error("[GetAvailableSlots] Ошибка получения конфигурации: restaurantID=%d, error=%v",
				req.RestaurantID, err)
			return nil, fmt.Errorf("%w: get slots config: %v", ErrInternal, err)
		}
	}

	// 5. Вычисление эффективного окна обслуживания и генерация слотов
	hours := cfg.EffectiveHours(restaurant.OpeningHour, restaurant.ClosingHour)
	slotTimes := domain.GenerateSlots(hours, req.Date, cfg.IntervalMinutes)

	slots := make([]types.TimeString, 0, len(slotTimes))
	for _, t := range slotTimes {
		slots = append(slots, types.NewTimeString(t))
	}

	uc.logger.Info("[GetAvailableSlots] Сгенерировано %d слотов: restaurantID=%d, date=%s",
		len(slots), req.RestaurantID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		RestaurantID:    req.RestaurantID,
		RestaurantName:  restaurant.Name,
		OpeningHour:     hours.OpeningHour,
		ClosingHour:     hours.ClosingHour,
		IntervalMinutes: cfg.IntervalMinutes,
		Slots:           slots,
	}, nil
}
