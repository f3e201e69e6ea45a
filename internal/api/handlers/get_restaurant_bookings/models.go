package get_restaurant_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/internal/service/bookings/models"
)

// ParseQuery собирает запрос к сервису из query параметров.
// Поддерживаются: startDate, endDate (YYYY-MM-DD), status, includeInactive.
func ParseQuery(userID, restaurantID int64, query url.Values) (*models.GetRestaurantBookingsRequest, error) {
	req := &models.GetRestaurantBookingsRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &end
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("endDate is before startDate")
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
