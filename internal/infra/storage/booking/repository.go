package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/pkg/dbmetrics"
	"github.com/mpe-apps/MPE-ReservationService/pkg/psqlbuilder"
	"github.com/mpe-apps/MPE-ReservationService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"restaurant_id",
	"date_in",
	"time_in",
	"pax",
	"request",
	"restaurant_name",
	"guest_name",
	"guest_phone",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"restaurant_id",
			"date_in",
			"time_in",
			"pax",
			"request",
			"restaurant_name",
			"guest_name",
			"guest_phone",
			"status",
		).
		Values(
			booking.UserID,
			booking.RestaurantID,
			booking.DateIn,
			booking.TimeIn,
			booking.Pax,
			booking.Request,
			booking.RestaurantName,
			booking.GuestName,
			booking.GuestPhone,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает историю бронирований пользователя
// Опционально фильтрует по статусу, сортировка от новых к старым
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date_in DESC", "time_in DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByRestaurantWithFilter получает бронирования ресторана с гибкой фильтрацией
func (r *Repository) GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"restaurant_id": filter.RestaurantID}).
		OrderBy("date_in ASC", "time_in ASC")

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date_in": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"date_in": *filter.EndDate})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		builder = builder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindActiveDuplicate ищет активное бронирование того же пользователя на тот же
// ресторан, дату и время. Используется в сериализуемой транзакции для защиты
// от двойной отправки формы.
func (r *Repository) FindActiveDuplicate(ctx context.Context, userID, restaurantID int64, dateIn time.Time, timeIn types.TimeString) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"user_id":       userID,
			"restaurant_id": restaurantID,
			"date_in":       dateIn,
			"time_in":       timeIn,
		}).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveDuplicate - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: FindActiveDuplicate - scan row: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Update обновляет слот бронирования (дату, время, количество гостей, пожелания)
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("date_in", booking.DateIn).
		Set("time_in", booking.TimeIn).
		Set("pax", booking.Pax).
		Set("request", booking.Request).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// Cancel отменяет бронирование с указанием причины
// Допустимы только статусы отмены
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	if status != domain.StatusCancelledByUser && status != domain.StatusCancelledByRestaurant {
		return ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в domain модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking            domain.Booking
		request            sql.NullString
		guestName          sql.NullString
		guestPhone         sql.NullString
		cancellationReason sql.NullString
		cancelledAt        sql.NullTime
		createdAt          sql.NullTime
		updatedAt          sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RestaurantID,
		&booking.DateIn,
		&booking.TimeIn,
		&booking.Pax,
		&request,
		&booking.RestaurantName,
		&guestName,
		&guestPhone,
		&booking.Status,
		&cancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if request.Valid {
		booking.Request = &request.String
	}
	if guestName.Valid {
		booking.GuestName = &guestName.String
	}
	if guestPhone.Valid {
		booking.GuestPhone = &guestPhone.String
	}
	if cancellationReason.Valid {
		booking.CancellationReason = &cancellationReason.String
	}
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует все строки результата
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan bookings: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate bookings: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
