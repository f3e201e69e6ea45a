package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	bookingstorage "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/booking"
	configstorage "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/config"
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
	"github.com/mpe-apps/MPE-ReservationService/pkg/ptr"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

type fakeBookingRepo struct {
	existing  *domain.Booking
	duplicate *domain.Booking
	updated   *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.existing == nil {
		return nil, bookingstorage.ErrBookingNotFound
	}
	// Отдаем копию, чтобы тест мог сравнить до/после
	b := *f.existing
	return &b, nil
}

func (f *fakeBookingRepo) FindActiveDuplicate(_ context.Context, _, _ int64, _ time.Time, _ types.TimeString) (*domain.Booking, error) {
	if f.duplicate == nil {
		return nil, bookingstorage.ErrBookingNotFound
	}
	return f.duplicate, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.UpdatedAt = time.Date(2024, time.May, 20, 9, 5, 0, 0, time.UTC)
	f.updated = booking
	return booking, nil
}

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

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:             101,
		UserID:         7,
		RestaurantID:   42,
		RestaurantName: "Trattoria Mare",
		DateIn:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		TimeIn:         types.TimeString("19:00"),
		Pax:            "4",
		Status:         domain.StatusConfirmed,
	}
}

func newUseCaseForTest(repo *fakeBookingRepo) *UseCase {
	return NewUseCase(
		repo,
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{restaurant: &restaurantservice.Restaurant{ID: 42, Name: "Trattoria Mare"}},
		fakeTxManager{},
		stubTime{now: testNow},
		nopLogger{},
	)
}

func TestExecute_PaxOnlyUpdateKeepsDateAndTime(t *testing.T) {
	repo := &fakeBookingRepo{existing: existingBooking()}
	uc := newUseCaseForTest(repo)

	resp, err := uc.Execute(context.Background(), Request{
		BookingID: 101,
		UserID:    7,
		Pax:       ptr.Ptr("9+"),
	})
	require.NoError(t, err)

	assert.Equal(t, "9+", resp.Pax)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), resp.DateIn)
	assert.Equal(t, "19:00", resp.TimeIn.String())
}

func TestExecute_DateChangeWithoutTimeIsCaughtAsStale(t *testing.T) {
	// Перенос даты без выбора нового времени: унаследованное время
	// привязано к старой дате и не совпадает ни с одним слотом новой
	repo := &fakeBookingRepo{existing: existingBooking()}
	uc := newUseCaseForTest(repo)

	_, err := uc.Execute(context.Background(), Request{
		BookingID: 101,
		UserID:    7,
		Date:      ptr.Ptr(time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []domain.ViolationReason{domain.ViolationTimeNotAvailableForDate}, vErr.Violations)
	assert.Nil(t, repo.updated)
}

func TestExecute_DateAndTimeChange(t *testing.T) {
	repo := &fakeBookingRepo{existing: existingBooking()}
	uc := newUseCaseForTest(repo)

	resp, err := uc.Execute(context.Background(), Request{
		BookingID: 101,
		UserID:    7,
		Date:      ptr.Ptr(time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)),
		Time:      ptr.Ptr(time.Date(2024, time.June, 5, 12, 30, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), resp.DateIn)
	assert.Equal(t, "12:30", resp.TimeIn.String())
	assert.Equal(t, "4", resp.Pax)
}

func TestExecute_MoveToSlotHeldByOtherBooking(t *testing.T) {
	// Другое активное бронирование пользователя уже занимает целевой слот
	repo := &fakeBookingRepo{
		existing:  existingBooking(),
		duplicate: &domain.Booking{ID: 202, UserID: 7, RestaurantID: 42},
	}
	uc := newUseCaseForTest(repo)

	_, err := uc.Execute(context.Background(), Request{
		BookingID: 101,
		UserID:    7,
		Date:      ptr.Ptr(time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)),
		Time:      ptr.Ptr(time.Date(2024, time.June, 5, 12, 30, 0, 0, time.UTC)),
	})

	assert.ErrorIs(t, err, ErrDuplicateBooking)
	assert.Nil(t, repo.updated)
}

func TestExecute_OwnSlotIsNotADuplicate(t *testing.T) {
	// Изменение без смены слота находит само бронирование - это не дубликат
	existing := existingBooking()
	repo := &fakeBookingRepo{
		existing:  existing,
		duplicate: existing,
	}
	uc := newUseCaseForTest(repo)

	resp, err := uc.Execute(context.Background(), Request{
		BookingID: 101,
		UserID:    7,
		Pax:       ptr.Ptr("6"),
	})
	require.NoError(t, err)
	assert.Equal(t, "6", resp.Pax)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{existing: existingBooking()}
	uc := newUseCaseForTest(repo)

	_, err := uc.Execute(context.Background(), Request{
		BookingID: 101,
		UserID:    99,
		Pax:       ptr.Ptr("2"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_CancelledBookingCannotBeUpdated(t *testing.T) {
	booking := existingBooking()
	booking.Status = domain.StatusCancelledByUser

	repo := &fakeBookingRepo{existing: booking}
	uc := newUseCaseForTest(repo)

	_, err := uc.Execute(context.Background(), Request{
		BookingID: 101,
		UserID:    7,
		Pax:       ptr.Ptr("2"),
	})
	assert.ErrorIs(t, err, ErrCannotBeUpdated)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newUseCaseForTest(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), Request{
		BookingID: 500,
		UserID:    7,
		Pax:       ptr.Ptr("2"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
