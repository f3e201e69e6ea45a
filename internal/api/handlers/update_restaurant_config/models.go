package update_restaurant_config

import "github.com/mpe-apps/MPE-ReservationService/internal/service/config/models"

// UpdateConfigRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	IntervalMinutes     *int `json:"intervalMinutes,omitempty"`
	MaxInlinePartySize  *int `json:"maxInlinePartySize,omitempty"`
	OpeningHourOverride *int `json:"openingHourOverride,omitempty"`
	ClosingHourOverride *int `json:"closingHourOverride,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(userID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:              userID,
		IntervalMinutes:     r.IntervalMinutes,
		MaxInlinePartySize:  r.MaxInlinePartySize,
		OpeningHourOverride: r.OpeningHourOverride,
		ClosingHourOverride: r.ClosingHourOverride,
	}
}
