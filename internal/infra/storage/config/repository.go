package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mpe-apps/MPE-ReservationService/internal/domain"
	"github.com/mpe-apps/MPE-ReservationService/pkg/dbmetrics"
	"github.com/mpe-apps/MPE-ReservationService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для работы с БД (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с конфигурацией слотов ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRestaurantID получает конфигурацию слотов ресторана
func (r *Repository) GetByRestaurantID(ctx context.Context, restaurantID int64) (*domain.RestaurantSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"interval_minutes",
		"max_inline_party_size",
		"opening_hour_override",
		"closing_hour_override",
		"created_at",
		"updated_at",
	).
		From("restaurant_slots_config").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg             domain.RestaurantSlotsConfig
		openingOverride sql.NullInt64
		closingOverride sql.NullInt64
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.RestaurantID,
		&cfg.IntervalMinutes,
		&cfg.MaxInlinePartySize,
		&openingOverride,
		&closingOverride,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: GetByRestaurantID - scan row: %v", ErrScanRow, err)
	}

	if openingOverride.Valid {
		v := int(openingOverride.Int64)
		cfg.OpeningHourOverride = &v
	}
	if closingOverride.Valid {
		v := int(closingOverride.Int64)
		cfg.ClosingHourOverride = &v
	}
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert создает или обновляет конфигурацию слотов ресторана
func (r *Repository) Upsert(ctx context.Context, cfg *domain.RestaurantSlotsConfig) (*domain.RestaurantSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_slots_config").
		Columns(
			"restaurant_id",
			"interval_minutes",
			"max_inline_party_size",
			"opening_hour_override",
			"closing_hour_override",
		).
		Values(
			cfg.RestaurantID,
			cfg.IntervalMinutes,
			cfg.MaxInlinePartySize,
			cfg.OpeningHourOverride,
			cfg.ClosingHourOverride,
		).
		Suffix(`ON CONFLICT (restaurant_id) DO UPDATE SET
			interval_minutes = EXCLUDED.interval_minutes,
			max_inline_party_size = EXCLUDED.max_inline_party_size,
			opening_hour_override = EXCLUDED.opening_hour_override,
			closing_hour_override = EXCLUDED.closing_hour_override,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
