package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	configRepo "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/config"
	restaurantClient "github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
	"github.com/mpe-apps/MPE-ReservationService/internal/service/config/models"
)

// Service сервис для работы с конфигурацией слотов ресторана
type Service struct {
	configRepo       ConfigRepository
	restaurantClient RestaurantServiceClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	restaurantClient RestaurantServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:       configRepo,
		restaurantClient: restaurantClient,
		logger:           logger,
	}
}

// GetByRestaurant получает конфигурацию слотов ресторана
// Публичный метод - доступен всем
// Если конфигурация не сохранена, возвращаются значения по умолчанию
func (s *Service) GetByRestaurant(ctx context.Context, restaurantID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetByRestaurant: fetching config for restaurant=%d", restaurantID)

	cfg, err := s.configRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetByRestaurant: no stored config for restaurant=%d, returning defaults", restaurantID)
			return models.FromDomainConfig(domain.DefaultSlotsConfig(restaurantID), true), nil
		}
		s.logger.Error("GetByRestaurant: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetByRestaurant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRestaurant: successfully fetched config id=%d", cfg.ID)
	return models.FromDomainConfig(cfg, false), nil
}

// Update обновляет конфигурацию слотов ресторана
// Доступно только менеджерам ресторана
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, restaurantID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for restaurant=%d by user=%d", restaurantID, req.UserID)

	// 1. Получаем ресторан для проверки прав доступа
	restaurant, err := s.restaurantClient.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantClient.ErrRestaurantNotFound) {
			s.logger.Warn("Update: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Update: failed to get restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер ресторана)
	if !s.isManager(restaurant, req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of restaurant=%d", req.UserID, restaurantID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем текущую конфигурацию (при отсутствии - значения по умолчанию)
	cfg, err := s.configRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			cfg = domain.DefaultSlotsConfig(restaurantID)
		} else {
			s.logger.Error("Update: repository error for restaurant=%d: %v", restaurantID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	// 4. Применяем обновления и валидируем результат
	req.ApplyToConfig(cfg)
	if err := s.validateConfigData(cfg); err != nil {
		s.logger.Warn("Update: validation failed for restaurant=%d: %v", restaurantID, err)
		return nil, err
	}

	// 5. Сохраняем конфигурацию
	updated, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated config id=%d for restaurant=%d", updated.ID, restaurantID)
	return models.FromDomainConfig(updated, false), nil
}

// Вспомогательные методы

// isManager проверяет, что пользователь является менеджером ресторана
func (s *Service) isManager(restaurant *restaurantClient.Restaurant, userID int64) bool {
	for _, managerID := range restaurant.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}

// validateConfigData валидирует параметры конфигурации
func (s *Service) validateConfigData(cfg *domain.RestaurantSlotsConfig) error {
	// Проверяем intervalMinutes
	if cfg.IntervalMinutes < domain.MinIntervalMinutes || cfg.IntervalMinutes > domain.MaxIntervalMinutes {
		return fmt.Errorf("%w: intervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}

	// Проверяем maxInlinePartySize
	if cfg.MaxInlinePartySize < domain.MinPartySizeCap || cfg.MaxInlinePartySize > domain.MaxPartySizeCap {
		return fmt.Errorf("%w: maxInlinePartySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySizeCap, domain.MaxPartySizeCap)
	}

	// Проверяем переопределения часов работы
	if cfg.OpeningHourOverride != nil && (*cfg.OpeningHourOverride < 0 || *cfg.OpeningHourOverride > 23) {
		return fmt.Errorf("%w: openingHourOverride must be between 0 and 23", ErrInvalidInput)
	}
	if cfg.ClosingHourOverride != nil && (*cfg.ClosingHourOverride < 0 || *cfg.ClosingHourOverride > 23) {
		return fmt.Errorf("%w: closingHourOverride must be between 0 and 23", ErrInvalidInput)
	}
	if cfg.OpeningHourOverride != nil && cfg.ClosingHourOverride != nil &&
		*cfg.OpeningHourOverride >= *cfg.ClosingHourOverride {
		return fmt.Errorf("%w: openingHourOverride must be before closingHourOverride", ErrInvalidInput)
	}

	return nil
}
