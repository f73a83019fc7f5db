package service

import (
	"context"
	"database/sql"
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/core/logger"
	"delivery-availability/modules/exception/dto"
	"delivery-availability/modules/exception/entity"
	"delivery-availability/modules/exception/repository"
	scheduleService "delivery-availability/modules/schedule/service"

	"github.com/google/uuid"
)

// ExceptionService owns date-specific overrides. At most one exception may
// exist per (location, date); the unique index enforces this at write time.
type ExceptionService struct {
	repo repository.ExceptionRepositoryInterface
}

// ExceptionServiceInterface defines the service contract.
type ExceptionServiceInterface interface {
	GetByLocationAndDate(ctx context.Context, locationID uuid.UUID, date time.Time) (*dto.ExceptionResponse, *errors.AppError)
	ListByLocationAndRange(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]dto.ExceptionResponse, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateExceptionRequest) (*dto.ExceptionResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateExceptionRequest) (*dto.ExceptionResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	PruneExpired(ctx context.Context) (int64, *errors.AppError)
}

func NewExceptionService(repo repository.ExceptionRepositoryInterface) ExceptionServiceInterface {
	return &ExceptionService{repo: repo}
}

func (s *ExceptionService) GetByLocationAndDate(ctx context.Context, locationID uuid.UUID, date time.Time) (*dto.ExceptionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	exc, err := s.repo.GetByLocationAndDate(ctx, locationID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get exception", err)
	}
	if exc == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "no exception for that date", nil)
	}

	return dto.ToExceptionResponse(exc), nil
}

func (s *ExceptionService) ListByLocationAndRange(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]dto.ExceptionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if to.Before(from) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "range end is before range start", nil)
	}

	excs, err := s.repo.ListByLocationAndRange(ctx, locationID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list exceptions", err)
	}

	return dto.ToExceptionResponses(excs), nil
}

func (s *ExceptionService) Create(ctx context.Context, req *dto.CreateExceptionRequest) (*dto.ExceptionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid location id", err)
	}

	date, err := time.Parse(constants.DateLayout, req.ExceptionDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "exception_date must be YYYY-MM-DD", err)
	}

	source := req.Source
	if source == "" {
		source = constants.ExceptionSourceUser
	}
	if source != constants.ExceptionSourceUser && source != constants.ExceptionSourceSystem {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "source must be user or system", nil)
	}

	if appErr := validateTypeAndTimes(req.Type, req.StartTime, req.EndTime); appErr != nil {
		return nil, appErr
	}

	exc := &entity.Exception{
		LocationID:    locationID,
		ExceptionDate: date,
		Type:          req.Type,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Note:          req.Note,
		Source:        source,
	}

	created, err := s.repo.Create(ctx, exc)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			logger.Info("ExceptionService:Create:Duplicate",
				"location_id", locationID, "exception_date", req.ExceptionDate)
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "an exception already exists for that date", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create exception", err)
	}

	return dto.ToExceptionResponse(created), nil
}

func (s *ExceptionService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateExceptionRequest) (*dto.ExceptionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	exc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get exception", err)
	}
	if exc == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "exception not found", nil)
	}

	if appErr := validateTypeAndTimes(req.Type, req.StartTime, req.EndTime); appErr != nil {
		return nil, appErr
	}

	exc.Type = req.Type
	exc.StartTime = req.StartTime
	exc.EndTime = req.EndTime
	exc.Note = req.Note
	if req.Source != "" {
		if req.Source != constants.ExceptionSourceUser && req.Source != constants.ExceptionSourceSystem {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "source must be user or system", nil)
		}
		exc.Source = req.Source
	}

	if err := s.repo.Update(ctx, exc); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "exception not found", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update exception", err)
	}

	return dto.ToExceptionResponse(exc), nil
}

func (s *ExceptionService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "exception not found", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete exception", err)
	}

	return nil
}

// validateTypeAndTimes checks the type-dependent time fields: blocked
// exceptions carry no times, every other type carries a well-formed window.
func validateTypeAndTimes(excType string, start, end *string) *errors.AppError {
	switch excType {
	case constants.ExceptionTypeBlocked:
		if start != nil || end != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "blocked exceptions must not carry times", nil)
		}
		return nil
	case constants.ExceptionTypeOpenExtra, constants.ExceptionTypeSpecialHours:
		if start == nil || end == nil {
			return errors.NewAppError(errors.ErrInvalidInput, "start_time and end_time are required for this type", nil)
		}
		if !scheduleService.IsTimeOfDay(*start) || !scheduleService.IsTimeOfDay(*end) {
			return errors.NewAppError(errors.ErrInvalidInput, "times must be zero-padded HH:MM values", nil)
		}
		if *start >= *end {
			return errors.NewAppError(errors.ErrValidation, "start_time must be before end_time", nil)
		}
		return nil
	default:
		return errors.NewAppError(errors.ErrInvalidInput, "type must be blocked, open_extra or special_hours", nil)
	}
}
