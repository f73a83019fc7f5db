package service

import (
	"context"
	"database/sql"

	"delivery-availability/core/cache"
	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/core/logger"
	"delivery-availability/modules/schedule/dto"
	"delivery-availability/modules/schedule/entity"
	"delivery-availability/modules/schedule/repository"

	"github.com/google/uuid"
)

// ScheduleService owns the write path for recurring weekly slots. Overlap
// validation is enforced here, at the service boundary, not by the store.
type ScheduleService struct {
	repo       repository.ScheduleRepositoryInterface
	cache      cache.Cache
	replicator *Replicator
}

// ScheduleServiceInterface defines the service contract.
type ScheduleServiceInterface interface {
	ListCell(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (*dto.CellResponse, *errors.AppError)
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, *errors.AppError)
	DeleteSlot(ctx context.Context, slotID uuid.UUID) *errors.AppError
	Replicate(ctx context.Context, source, target entity.CellKey) (*ReplicationReport, *errors.AppError)
}

func NewScheduleService(repo repository.ScheduleRepositoryInterface, c cache.Cache) ScheduleServiceInterface {
	return &ScheduleService{
		repo:       repo,
		cache:      c,
		replicator: NewReplicator(repo, c),
	}
}

// ListCell returns the slot set of one cell.
func (s *ScheduleService) ListCell(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (*dto.CellResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := validateDayOfWeek(dayOfWeek); appErr != nil {
		return nil, appErr
	}

	slots, err := s.repo.ListSlots(ctx, locationID, dayOfWeek)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list slots", err)
	}

	return dto.ToCellResponse(locationID.String(), dayOfWeek, slots), nil
}

// CreateSlot validates the prospective cell (existing slots plus the new one)
// and writes the slot. All violations are reported together.
func (s *ScheduleService) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid location id", err)
	}
	if appErr := validateDayOfWeek(req.DayOfWeek); appErr != nil {
		return nil, appErr
	}
	if req.Status != constants.SlotStatusAvailable && req.Status != constants.SlotStatusUnavailable {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "status must be available or unavailable", nil)
	}
	if !IsTimeOfDay(req.StartTime) || !IsTimeOfDay(req.EndTime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "times must be zero-padded HH:MM values", nil)
	}

	existing, err := s.repo.ListSlots(ctx, locationID, req.DayOfWeek)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list slots", err)
	}

	ranges := make([]entity.TimeRange, 0, len(existing)+1)
	for _, slot := range existing {
		ranges = append(ranges, entity.TimeRange{Start: slot.StartTime, End: slot.EndTime})
	}
	ranges = append(ranges, entity.TimeRange{Start: req.StartTime, End: req.EndTime})

	if violations := ValidateRanges(ranges); len(violations) > 0 {
		logger.Info("ScheduleService:CreateSlot:ValidationFailed",
			"location_id", locationID, "day_of_week", req.DayOfWeek, "violations", len(violations))
		return nil, errors.NewAppError(errors.ErrValidation, "slot conflicts with the cell", nil).
			WithDetails(violations)
	}

	slot := &entity.WeeklySlot{
		LocationID: locationID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     req.Status,
		Metadata:   entity.JSONB(req.Metadata),
	}

	created, err := s.repo.CreateSlot(ctx, slot)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create slot", err)
	}

	cache.InvalidateCell(ctx, s.cache, locationID, req.DayOfWeek)

	return dto.ToSlotResponse(created), nil
}

// DeleteSlot removes one slot. Deleting an id that no longer exists is an
// error; the caller should re-fetch the cell before retrying.
func (s *ScheduleService) DeleteSlot(ctx context.Context, slotID uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	slot, err := s.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "failed to get slot", err)
	}
	if slot == nil {
		return errors.NewAppError(errors.ErrNotFound, "slot not found", nil)
	}

	if err := s.repo.DeleteSlot(ctx, slotID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "slot not found", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete slot", err)
	}

	cache.InvalidateCell(ctx, s.cache, slot.LocationID, slot.DayOfWeek)

	return nil
}

// Replicate copies (or clears) the source cell onto the target cell.
func (s *ScheduleService) Replicate(ctx context.Context, source, target entity.CellKey) (*ReplicationReport, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	if appErr := validateDayOfWeek(source.DayOfWeek); appErr != nil {
		return nil, appErr
	}
	if appErr := validateDayOfWeek(target.DayOfWeek); appErr != nil {
		return nil, appErr
	}

	return s.replicator.Replicate(ctx, source, target)
}

func validateDayOfWeek(day int) *errors.AppError {
	if day < constants.DayOfWeekMin || day > constants.DayOfWeekMax {
		return errors.NewAppError(errors.ErrInvalidInput, "day_of_week must be between 0 and 6", nil)
	}
	return nil
}
