package repository

import (
	"context"
	"database/sql"

	"delivery-availability/core/database"
	"delivery-availability/core/logger"
	"delivery-availability/modules/schedule/entity"

	"github.com/google/uuid"
)

// ScheduleRepository owns the weekly_slots table.
type ScheduleRepository struct {
	DB database.IDatabase
}

func NewScheduleRepository(db database.IDatabase) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

// ScheduleRepositoryInterface defines the repository contract.
type ScheduleRepositoryInterface interface {
	ListSlots(ctx context.Context, locationID uuid.UUID, dayOfWeek int) ([]entity.WeeklySlot, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]entity.WeeklySlot, error)
	GetSlotByID(ctx context.Context, id uuid.UUID) (*entity.WeeklySlot, error)
	CreateSlot(ctx context.Context, slot *entity.WeeklySlot) (*entity.WeeklySlot, error)
	DeleteSlot(ctx context.Context, id uuid.UUID) error
}

func (r *ScheduleRepository) ListSlots(ctx context.Context, locationID uuid.UUID, dayOfWeek int) ([]entity.WeeklySlot, error) {
	query := `
		SELECT id, location_id, day_of_week, start_time, end_time, status, metadata, created_at, updated_at
		FROM weekly_slots
		WHERE location_id = $1 AND day_of_week = $2
		ORDER BY start_time
	`

	var slots []entity.WeeklySlot
	err := r.DB.SelectContext(ctx, &slots, query, locationID, dayOfWeek)
	if err != nil {
		logger.Error("ScheduleRepository:ListSlots", err)
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]entity.WeeklySlot, error) {
	query := `
		SELECT id, location_id, day_of_week, start_time, end_time, status, metadata, created_at, updated_at
		FROM weekly_slots
		WHERE location_id = $1
		ORDER BY day_of_week, start_time
	`

	var slots []entity.WeeklySlot
	err := r.DB.SelectContext(ctx, &slots, query, locationID)
	if err != nil {
		logger.Error("ScheduleRepository:ListByLocation", err)
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleRepository) GetSlotByID(ctx context.Context, id uuid.UUID) (*entity.WeeklySlot, error) {
	query := `
		SELECT id, location_id, day_of_week, start_time, end_time, status, metadata, created_at, updated_at
		FROM weekly_slots
		WHERE id = $1
	`

	var slot entity.WeeklySlot
	err := r.DB.GetContext(ctx, &slot, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ScheduleRepository:GetSlotByID", err)
		return nil, err
	}

	return &slot, nil
}

func (r *ScheduleRepository) CreateSlot(ctx context.Context, slot *entity.WeeklySlot) (*entity.WeeklySlot, error) {
	query := `
		INSERT INTO weekly_slots (location_id, day_of_week, start_time, end_time, status, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, location_id, day_of_week, start_time, end_time, status, metadata, created_at, updated_at
	`

	var created entity.WeeklySlot
	err := r.DB.GetContext(ctx, &created, query,
		slot.LocationID, slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.Status, slot.Metadata)
	if err != nil {
		logger.Error("ScheduleRepository:CreateSlot", err)
		return nil, err
	}

	return &created, nil
}

// DeleteSlot removes one slot. Deleting an id that does not exist returns
// sql.ErrNoRows; the delete is deliberately not idempotent.
func (r *ScheduleRepository) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM weekly_slots WHERE id = $1`

	res, err := r.DB.SQLx().ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("ScheduleRepository:DeleteSlot", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.Error("ScheduleRepository:DeleteSlot:RowsAffected", err)
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
