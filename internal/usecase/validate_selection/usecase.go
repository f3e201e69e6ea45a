package validate_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/config"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
)

// UseCase сценарий проверки выбора бронирования без создания записи.
// Возвращает тот же список нарушений, что и создание бронирования,
// поэтому клиент может подсветить ошибки до отправки формы.
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

// Execute выполняет проверку выбора бронирования
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("[ValidateSelection] Проверка выбора: userID=%d, restaurantID=%d",
		req.UserID, req.RestaurantID)

	// 1. Валидация входных данных
	if req.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant id must be positive", ErrInvalidInput)
	}

	// 2. Получение данных ресторана из каталога
	restaurant, err := uc.restaurantClient.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantservice.ErrRestaurantNotFound) {
			uc.logger.Warn("[ValidateSelection] Ресторан не найден: restaurantID=%d", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("[ValidateSelection] Ошибка получения ресторана: restaurantID=%d, error=%v",
			req.RestaurantID, err)
		return nil, fmt.Errorf("%w: get restaurant: %v", ErrInternal, err)
	}

	// 3. Получение конфигурации слотов (при отсутствии — значения по умолчанию)
	cfg, err := uc.configRepo.GetByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg = domain.DefaultSlotsConfig(req.RestaurantID)
		} else {
			uc.logger.Error("[ValidateSelection] Ошибка получения конфигурации: restaurantID=%d, error=%v",
				req.RestaurantID, err)
			return nil, fmt.Errorf("%w: get slots config: %v", ErrInternal, err)
		}
	}

	// 4. Сборка выбора и проверка доменными правилами
	selection := domain.BookingSlotSelection{
		Date:           req.Date,
		Time:           req.Time,
		PartySize:      domain.ParsePax(req.Pax),
		SpecialRequest: req.SpecialRequest,
	}

	hours := cfg.EffectiveHours(restaurant.OpeningHour, restaurant.ClosingHour)
	result := domain.ValidateSelection(selection, hours, cfg.IntervalMinutes, cfg.MaxInlinePartySize, uc.timeProvider.Now())

	if !result.Valid {
		uc.logger.Info("[ValidateSelection] Найдено %d нарушений: restaurantID=%d, violations=%v",
			len(result.Violations), req.RestaurantID, result.Violations)
	}

	return &Response{
		Valid:      result.Valid,
		Violations: result.Violations,
	}, nil
}
