package models

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации слотов ресторана
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	UserID              int64 `json:"userId"`
	IntervalMinutes     *int  `json:"intervalMinutes,omitempty"`
	MaxInlinePartySize  *int  `json:"maxInlinePartySize,omitempty"`
	OpeningHourOverride *int  `json:"openingHourOverride,omitempty"`
	ClosingHourOverride *int  `json:"closingHourOverride,omitempty"`
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только непустые (not nil) поля из request
func (r *UpdateConfigRequest) ApplyToConfig(cfg *domain.RestaurantSlotsConfig) {
	if r.IntervalMinutes != nil {
		cfg.IntervalMinutes = *r.IntervalMinutes
	}
	if r.MaxInlinePartySize != nil {
		cfg.MaxInlinePartySize = *r.MaxInlinePartySize
	}
	if r.OpeningHourOverride != nil {
		cfg.OpeningHourOverride = r.OpeningHourOverride
	}
	if r.ClosingHourOverride != nil {
		cfg.ClosingHourOverride = r.ClosingHourOverride
	}
}

// Response модели

// ConfigResponse ответ с данными конфигурации слотов ресторана
type ConfigResponse struct {
	ID                  int64     `json:"id,omitempty"`
	RestaurantID        int64     `json:"restaurantId"`
	IntervalMinutes     int       `json:"intervalMinutes"`
	MaxInlinePartySize  int       `json:"maxInlinePartySize"`
	OpeningHourOverride *int      `json:"openingHourOverride,omitempty"`
	ClosingHourOverride *int      `json:"closingHourOverride,omitempty"`
	IsDefault           bool      `json:"isDefault"` // true, если конфигурация не сохранена и применяются значения по умолчанию
	CreatedAt           time.Time `json:"createdAt,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.RestaurantSlotsConfig, isDefault bool) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                  c.ID,
		RestaurantID:        c.RestaurantID,
		IntervalMinutes:     c.IntervalMinutes,
		MaxInlinePartySize:  c.MaxInlinePartySize,
		OpeningHourOverride: c.OpeningHourOverride,
		ClosingHourOverride: c.ClosingHourOverride,
		IsDefault:           isDefault,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
