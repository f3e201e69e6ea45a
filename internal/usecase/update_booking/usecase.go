package update_booking

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

// UseCase сценарий изменения существующего бронирования.
// Выбор засевается текущими значениями бронирования, поверх накладываются
// присланные изменения, и результат проверяется целиком: устаревшее
// время при смене даты будет поймано как обычное нарушение.
type UseCase struct {
	bookingRepo      BookingRepository
	configRepo       ConfigRepository
	restaurantClient RestaurantServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	restaurantClient RestaurantServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		configRepo:       configRepo,
		restaurantClient: restaurantClient,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute выполняет изменение бронирования
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("[UpdateBooking] Изменение бронирования: bookingID=%d, userID=%d",
		req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[UpdateBooking] Ошибка валидации запроса: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var updated *domain.Booking

	txErr := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Загрузка бронирования и проверка доступа
		existing, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingstorage.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}
		if existing.UserID != req.UserID {
			return ErrAccessDenied
		}
		if !existing.CanBeUpdated() {
			return ErrCannotBeUpdated
		}

		// 3. Получение данных ресторана из каталога
		restaurant, err := uc.restaurantClient.GetRestaurant(txCtx, existing.RestaurantID)
		if err != nil {
			if errors.Is(err, restaurantservice.ErrRestaurantNotFound) {
				return ErrRestaurantNotFound
			}
			return fmt.Errorf("%w: get restaurant: %v", ErrInternal, err)
		}

		// 4. Засев выбора текущими значениями и наложение изменений
		selection := domain.SeedFromExisting(existing.Slot())
		if req.Date != nil {
			selection.Date = req.Date
		}
		if req.Time != nil {
			selection.Time = req.Time
		}
		if req.Pax != nil {
			selection.PartySize = domain.ParsePax(*req.Pax)
		}
		if req.SpecialRequest != nil {
			selection.SpecialRequest = *req.SpecialRequest
		}

		// 5. Конфигурация слотов (при отсутствии — значения по умолчанию)
		cfg, err := uc.configRepo.GetByRestaurantID(txCtx, existing.RestaurantID)
		if err != nil {
			if errors.Is(err, configstorage.ErrConfigNotFound) {
				cfg = domain.DefaultSlotsConfig(existing.RestaurantID)
			} else {
				return fmt.Errorf("%w: get slots config: %v", ErrInternal, err)
			}
		}

		// 6. Проверка итогового выбора доменными правилами
		hours := cfg.EffectiveHours(restaurant.OpeningHour, restaurant.ClosingHour)
		result := domain.ValidateSelection(selection, hours, cfg.IntervalMinutes, cfg.MaxInlinePartySize, now)
		if !result.Valid {
			return &ValidationError{Violations: result.Violations}
		}

		timeIn := types.NewTimeString(*selection.Time)

		// 7. Проверка, что новый слот не занят другим активным бронированием
		// пользователя. Само изменяемое бронирование дубликатом не считается.
		duplicate, err := uc.bookingRepo.FindActiveDuplicate(txCtx, existing.UserID, existing.RestaurantID, *selection.Date, timeIn)
		if err != nil && !errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return fmt.Errorf("%w: find duplicate: %v", ErrInternal, err)
		}
		if duplicate != nil && duplicate.ID != existing.ID {
			return ErrDuplicateBooking
		}

		// 8. Применение изменений и сохранение
		existing.DateIn = *selection.Date
		existing.TimeIn = timeIn
		existing.Pax = selection.PartySize.PaxString()
		if selection.SpecialRequest != "" {
			r := selection.SpecialRequest
			existing.Request = &r
		} else {
			existing.Request = nil
		}

		updated, err = uc.bookingRepo.Update(txCtx, existing)
		if err != nil {
			return fmt.Errorf("%w: update booking: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		var vErr *ValidationError
		switch {
		case errors.As(txErr, &vErr):
			uc.logger.Warn("[UpdateBooking] Выбор не прошел проверку: bookingID=%d, violations=%v",
				req.BookingID, vErr.Violations)
		case errors.Is(txErr, ErrBookingNotFound),
			errors.Is(txErr, ErrAccessDenied),
			errors.Is(txErr, ErrCannotBeUpdated),
			errors.Is(txErr, ErrDuplicateBooking):
			uc.logger.Warn("[UpdateBooking] Изменение отклонено: bookingID=%d, error=%v", req.BookingID, txErr)
		default:
			uc.logger.Error("[UpdateBooking] Ошибка транзакции: bookingID=%d, error=%v", req.BookingID, txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("[UpdateBooking] Бронирование изменено: bookingID=%d, userID=%d",
		req.BookingID, req.UserID)

	return responseFromBooking(updated), nil
}
