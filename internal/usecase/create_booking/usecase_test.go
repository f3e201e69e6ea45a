package create_booking

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
	"github.com/mpe-apps/MPE-ReservationService/internal/integrations/userservice"
	"github.com/mpe-apps/MPE-ReservationService/pkg/ptr"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

type fakeBookingRepo struct {
	duplicate *domain.Booking
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 101
	booking.CreatedAt = time.Date(2024, time.May, 20, 9, 5, 0, 0, time.UTC)
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) FindActiveDuplicate(_ context.Context, _, _ int64, _ time.Time, _ types.TimeString) (*domain.Booking, error) {
	if f.duplicate == nil {
		return nil, bookingstorage.ErrBookingNotFound
	}
	return f.duplicate, nil
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

type fakeUserClient struct {
	profile *userservice.Profile
	err     error
}

func (f *fakeUserClient) GetProfileWithGracefulDegradation(_ context.Context, _ int64) (*userservice.Profile, error) {
	return f.profile, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

func newUseCaseForTest(repo *fakeBookingRepo, userClient *fakeUserClient) *UseCase {
	return NewUseCase(
		repo,
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{restaurant: &restaurantservice.Restaurant{ID: 42, Name: "Trattoria Mare"}},
		userClient,
		fakeTxManager{},
		stubTime{now: testNow},
		nopLogger{},
	)
}

func validRequest() Request {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	slot := time.Date(2024, time.June, 1, 19, 0, 0, 0, time.UTC)
	return Request{
		UserID:       7,
		RestaurantID: 42,
		Date:         &date,
		Time:         &slot,
		Pax:          "4",
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCaseForTest(repo, &fakeUserClient{profile: &userservice.Profile{
		ID:        7,
		FirstName: "Anna",
		LastName:  "Bergström",
		Cellphone: "+46701234567",
	}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "Trattoria Mare", resp.RestaurantName)
	assert.Equal(t, "19:00", resp.TimeIn.String())
	assert.Equal(t, "4", resp.Pax)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	require.NotNil(t, resp.GuestName)
	assert.Equal(t, "Anna Bergström", *resp.GuestName)
	require.NotNil(t, resp.GuestPhone)
	assert.Equal(t, "+46701234567", *resp.GuestPhone)
}

func TestExecute_LargePartySentinel(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCaseForTest(repo, &fakeUserClient{})

	req := validRequest()
	req.Pax = "9+"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "9+", resp.Pax)
}

func TestExecute_ProfileUnavailableDoesNotBlockBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCaseForTest(repo, &fakeUserClient{err: userservice.ErrServiceDegraded})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.GuestName)
	assert.Nil(t, resp.GuestPhone)
}

func TestExecute_EmptySelectionReturnsOrderedViolations(t *testing.T) {
	uc := newUseCaseForTest(&fakeBookingRepo{}, &fakeUserClient{})

	_, err := uc.Execute(context.Background(), Request{UserID: 7, RestaurantID: 42})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []domain.ViolationReason{
		domain.ViolationMissingDate,
		domain.ViolationMissingTime,
		domain.ViolationMissingPartySize,
	}, vErr.Violations)
}

func TestExecute_PastDateViolation(t *testing.T) {
	uc := newUseCaseForTest(&fakeBookingRepo{}, &fakeUserClient{})

	req := validRequest()
	date := time.Date(2024, time.May, 19, 0, 0, 0, 0, time.UTC)
	slot := time.Date(2024, time.May, 19, 19, 0, 0, 0, time.UTC)
	req.Date = &date
	req.Time = &slot

	_, err := uc.Execute(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []domain.ViolationReason{domain.ViolationDateInPast}, vErr.Violations)
}

func TestExecute_DuplicateBooking(t *testing.T) {
	repo := &fakeBookingRepo{duplicate: &domain.Booking{ID: 55}}
	uc := newUseCaseForTest(repo, &fakeUserClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateBooking)
	assert.Nil(t, repo.created)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{err: configstorage.ErrConfigNotFound},
		&fakeRestaurantClient{err: restaurantservice.ErrRestaurantNotFound},
		&fakeUserClient{},
		fakeTxManager{},
		stubTime{now: testNow},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_SpecialRequestTooLong(t *testing.T) {
	uc := newUseCaseForTest(&fakeBookingRepo{}, &fakeUserClient{})

	long := make([]byte, domain.MaxSpecialRequestLength+1)
	for i := range long {
		long[i] = 'x'
	}

	req := validRequest()
	req.SpecialRequest = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
