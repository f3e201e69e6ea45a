package validate_selection

import (
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	validateSelection "github.com/mpe-apps/MPE-ReservationService/internal/usecase/validate_selection"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

// ValidateSelectionRequest HTTP request model.
// Поля выбора опциональны: отсутствующее поле попадает в список нарушений.
type ValidateSelectionRequest struct {
	RestaurantID int64   `json:"restaurantId"`
	Date         *string `json:"date,omitempty"` // "2025-10-15"
	Time         *string `json:"time,omitempty"` // "19:00"
	Pax          *string `json:"pax,omitempty"`  // "1".."8" или "9+"
	Request      *string `json:"request,omitempty"`
}

// ValidationResultResponse HTTP response model
type ValidationResultResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateSelectionRequest) ToUseCaseRequest(userID int64) (validateSelection.Request, error) {
	req := validateSelection.Request{
		UserID:       userID,
		RestaurantID: r.RestaurantID,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return req, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		timeStr, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return req, err
		}
		// Время без даты проверяется как время на нулевой дате
		anchor := time.Time{}
		if req.Date != nil {
			anchor = *req.Date
		}
		t, err := timeStr.OnDate(anchor)
		if err != nil {
			return req, err
		}
		req.Time = &t
	}

	if r.Pax != nil {
		req.Pax = *r.Pax
	}
	if r.Request != nil {
		req.SpecialRequest = *r.Request
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateSelection.Response) *ValidationResultResponse {
	violations := make([]string, 0, len(resp.Violations))
	for _, v := range resp.Violations {
		violations = append(violations, string(v))
	}

	return &ValidationResultResponse{
		Valid:      resp.Valid,
		Violations: violations,
	}
}
