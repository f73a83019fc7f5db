package repository

import (
	"context"
	"database/sql"

	"delivery-availability/core/database"
	"delivery-availability/core/logger"
	"delivery-availability/modules/frequency/entity"

	"github.com/google/uuid"
)

// FrequencyRepository owns the frequency_flags table.
type FrequencyRepository struct {
	DB database.IDatabase
}

func NewFrequencyRepository(db database.IDatabase) *FrequencyRepository {
	return &FrequencyRepository{DB: db}
}

// FrequencyRepositoryInterface defines the repository contract.
type FrequencyRepositoryInterface interface {
	Get(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (*entity.FrequencyFlag, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]entity.FrequencyFlag, error)
	Toggle(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (bool, error)
}

func (r *FrequencyRepository) Get(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (*entity.FrequencyFlag, error) {
	query := `
		SELECT id, location_id, day_of_week, enabled, created_at, updated_at
		FROM frequency_flags
		WHERE location_id = $1 AND day_of_week = $2
	`

	var flag entity.FrequencyFlag
	err := r.DB.GetContext(ctx, &flag, query, locationID, dayOfWeek)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("FrequencyRepository:Get", err)
		return nil, err
	}
	return &flag, nil
}

func (r *FrequencyRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]entity.FrequencyFlag, error) {
	query := `
		SELECT id, location_id, day_of_week, enabled, created_at, updated_at
		FROM frequency_flags
		WHERE location_id = $1
		ORDER BY day_of_week
	`

	flags := []entity.FrequencyFlag{}
	err := r.DB.SelectContext(ctx, &flags, query, locationID)
	if err != nil {
		logger.Error("FrequencyRepository:ListByLocation", err)
		return nil, err
	}
	return flags, nil
}

// Toggle flips the flag for a location/weekday pair in a single statement
// and returns the new value. A pair never toggled before starts enabled.
func (r *FrequencyRepository) Toggle(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (bool, error) {
	query := `
		INSERT INTO frequency_flags (id, location_id, day_of_week, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (location_id, day_of_week)
		DO UPDATE SET enabled = NOT frequency_flags.enabled, updated_at = NOW()
		RETURNING enabled
	`

	var enabled bool
	err := r.DB.QueryRowContext(ctx, query, uuid.New(), locationID, dayOfWeek).Scan(&enabled)
	if err != nil {
		logger.Error("FrequencyRepository:Toggle", err)
		return false, err
	}
	return enabled, nil
}
