package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	configstorage "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/config"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
	"github.com/mpe-apps/MPE-ReservationService/pkg/ptr"
)

type fakeConfigRepo struct {
	cfg *domain.RestaurantSlotsConfig
	err error
}

func (f *fakeConfigRepo) GetByRestaurantID(_ context.Context, _ int64) (*domain.RestaurantSlotsConfig, error) {
	return f.cfg, f.err
}

type fakeRestaurantClient struct {
	restaurant *restaurantservice.Restaurant
	err        error
}

func (f *fakeRestaurantClient) GetRestaurant(_ context.Context, _ int64) (*restaurantservice.Restaurant, error) {
	return f.restaurant, f.err
}

type stubTime struct {
	now time.Time
}

func (s stubTime) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)

func testRestaurant() *restaurantservice.Restaurant {
	return &restaurantservice.Restaurant{
		ID:   42,
		Name: "Trattoria Mare",
	}
}

func TestExecute_DefaultsWhenNoStoredConfig(t *testing.T) {
	uc := NewUseCase(
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{restaurant: testRestaurant()},
		stubTime{now: testNow},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 10:00..22:00 каждые 30 минут, включая закрывающий слот
	assert.Len(t, resp.Slots, 25)
	assert.Equal(t, "10:00", resp.Slots[0].String())
	assert.Equal(t, "22:00", resp.Slots[len(resp.Slots)-1].String())
	assert.Equal(t, 10, resp.OpeningHour)
	assert.Equal(t, 22, resp.ClosingHour)
	assert.Equal(t, 30, resp.IntervalMinutes)
	assert.Equal(t, "Trattoria Mare", resp.RestaurantName)
}

func TestExecute_StoredConfigAndCatalogHours(t *testing.T) {
	restaurant := testRestaurant()
	restaurant.OpeningHour = ptr.Ptr(12)
	restaurant.ClosingHour = ptr.Ptr(15)

	uc := NewUseCase(
		&fakeConfigRepo{cfg: &domain.RestaurantSlotsConfig{
			RestaurantID:       42,
			IntervalMinutes:    60,
			MaxInlinePartySize: 8,
		}},
		&fakeRestaurantClient{restaurant: restaurant},
		stubTime{now: testNow},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 4)
	assert.Equal(t, "12:00", resp.Slots[0].String())
	assert.Equal(t, "15:00", resp.Slots[3].String())
}

func TestExecute_ConfigOverrideBeatsCatalogHours(t *testing.T) {
	restaurant := testRestaurant()
	restaurant.OpeningHour = ptr.Ptr(12)
	restaurant.ClosingHour = ptr.Ptr(23)

	uc := NewUseCase(
		&fakeConfigRepo{cfg: &domain.RestaurantSlotsConfig{
			RestaurantID:        42,
			IntervalMinutes:     30,
			MaxInlinePartySize:  8,
			OpeningHourOverride: ptr.Ptr(18),
			ClosingHourOverride: ptr.Ptr(20),
		}},
		&fakeRestaurantClient{restaurant: restaurant},
		stubTime{now: testNow},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "18:00", resp.Slots[0].String())
	assert.Equal(t, "20:00", resp.Slots[len(resp.Slots)-1].String())
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := NewUseCase(
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{restaurant: testRestaurant()},
		stubTime{now: testNow},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         time.Date(2024, time.May, 19, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	uc := NewUseCase(
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{restaurant: testRestaurant()},
		stubTime{now: testNow},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{err: restaurantservice.ErrRestaurantNotFound},
		stubTime{now: testNow},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{restaurant: testRestaurant()},
		stubTime{now: testNow},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 0,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
