package validate_selection

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

func newUseCaseForTest() *UseCase {
	return NewUseCase(
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{restaurant: &restaurantservice.Restaurant{ID: 42, Name: "Trattoria Mare"}},
		stubTime{now: testNow},
		nopLogger{},
	)
}

func TestExecute_ValidSelection(t *testing.T) {
	uc := newUseCaseForTest()

	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         ptr.Ptr(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		Time:         ptr.Ptr(time.Date(2024, time.June, 1, 19, 0, 0, 0, time.UTC)),
		Pax:          "4",
	})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Violations)
}

func TestExecute_EmptySelectionListsAllViolationsInOrder(t *testing.T) {
	uc := newUseCaseForTest()

	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
	})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Equal(t, []domain.ViolationReason{
		domain.ViolationMissingDate,
		domain.ViolationMissingTime,
		domain.ViolationMissingPartySize,
	}, resp.Violations)
}

func TestExecute_TimeOutsideWorkingHours(t *testing.T) {
	uc := newUseCaseForTest()

	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         ptr.Ptr(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		Time:         ptr.Ptr(time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC)),
		Pax:          "2",
	})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Equal(t, []domain.ViolationReason{domain.ViolationTimeNotAvailableForDate}, resp.Violations)
}

func TestExecute_StoredConfigNarrowsSlots(t *testing.T) {
	uc := NewUseCase(
		&fakeConfigRepo{cfg: &domain.RestaurantSlotsConfig{
			RestaurantID:        42,
			IntervalMinutes:     60,
			MaxInlinePartySize:  8,
			OpeningHourOverride: ptr.Ptr(18),
			ClosingHourOverride: ptr.Ptr(20),
		}},
		&fakeRestaurantClient{restaurant: &restaurantservice.Restaurant{ID: 42, Name: "Trattoria Mare"}},
		stubTime{now: testNow},
		nopLogger{},
	)

	// 19:00 попадает в окно 18..20 с шагом 60 минут
	resp, err := uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         ptr.Ptr(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		Time:         ptr.Ptr(time.Date(2024, time.June, 1, 19, 0, 0, 0, time.UTC)),
		Pax:          "2",
	})
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	// 19:30 между шагами — нарушение
	resp, err = uc.Execute(context.Background(), Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         ptr.Ptr(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		Time:         ptr.Ptr(time.Date(2024, time.June, 1, 19, 30, 0, 0, time.UTC)),
		Pax:          "2",
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, []domain.ViolationReason{domain.ViolationTimeNotAvailableForDate}, resp.Violations)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{err: restaurantservice.ErrRestaurantNotFound},
		stubTime{now: testNow},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{UserID: 7, RestaurantID: 42})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_InvalidRestaurantID(t *testing.T) {
	uc := newUseCaseForTest()

	_, err := uc.Execute(context.Background(), Request{UserID: 7, RestaurantID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
