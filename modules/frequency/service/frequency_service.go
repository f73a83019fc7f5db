package service

import (
	"context"

	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/modules/frequency/dto"
	"delivery-availability/modules/frequency/repository"

	"github.com/google/uuid"
)

// FrequencyService manages delivery-frequency flags.
type FrequencyService struct {
	repo repository.FrequencyRepositoryInterface
}

// FrequencyServiceInterface defines the service contract.
type FrequencyServiceInterface interface {
	Has(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (bool, *errors.AppError)
	Toggle(ctx context.Context, req *dto.ToggleFlagRequest) (*dto.ToggleResponse, *errors.AppError)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]dto.FlagResponse, *errors.AppError)
}

func NewFrequencyService(repo repository.FrequencyRepositoryInterface) FrequencyServiceInterface {
	return &FrequencyService{repo: repo}
}

// Has reports whether the cadence flag is set for a location/weekday pair.
// Absent rows and disabled rows both read as false.
func (s *FrequencyService) Has(ctx context.Context, locationID uuid.UUID, dayOfWeek int) (bool, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := validateDayOfWeek(dayOfWeek); appErr != nil {
		return false, appErr
	}

	flag, err := s.repo.Get(ctx, locationID, dayOfWeek)
	if err != nil {
		return false, errors.NewAppError(errors.ErrGetFailed, "failed to read frequency flag", err)
	}
	return flag != nil && flag.Enabled, nil
}

// Toggle flips the flag and returns its new state.
func (s *FrequencyService) Toggle(ctx context.Context, req *dto.ToggleFlagRequest) (*dto.ToggleResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid location id", err)
	}
	if appErr := validateDayOfWeek(req.DayOfWeek); appErr != nil {
		return nil, appErr
	}

	enabled, err := s.repo.Toggle(ctx, locationID, req.DayOfWeek)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to toggle frequency flag", err)
	}

	return &dto.ToggleResponse{
		LocationID: req.LocationID,
		DayOfWeek:  req.DayOfWeek,
		Enabled:    enabled,
	}, nil
}

func (s *FrequencyService) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]dto.FlagResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	flags, err := s.repo.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list frequency flags", err)
	}
	return dto.ToFlagResponses(flags), nil
}

func validateDayOfWeek(day int) *errors.AppError {
	if day < constants.DayOfWeekMin || day > constants.DayOfWeekMax {
		return errors.NewAppError(errors.ErrInvalidInput, "day_of_week must be between 0 and 6", nil)
	}
	return nil
}
