package service

import (
	"context"
	"encoding/json"
	"time"

	"delivery-availability/core/cache"
	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/core/logger"
	"delivery-availability/modules/availability/entity"
	exceptionRepo "delivery-availability/modules/exception/repository"
	scheduleRepo "delivery-availability/modules/schedule/repository"

	"github.com/google/uuid"
)

// ResolutionService is the read path: it layers date exceptions over the
// recurring schedule and reports one effective status per cell.
type ResolutionService struct {
	slots      scheduleRepo.ScheduleRepositoryInterface
	exceptions exceptionRepo.ExceptionRepositoryInterface
	cache      cache.Cache
}

// ResolutionServiceInterface defines the service contract.
type ResolutionServiceInterface interface {
	Resolve(ctx context.Context, locationID uuid.UUID, dayOfWeek int, date *time.Time) (*entity.Resolution, *errors.AppError)
	ResolveWeek(ctx context.Context, locationID uuid.UUID) ([]entity.Resolution, *errors.AppError)
	ResolveMatrix(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]entity.DatedResolution, *errors.AppError)
}

func NewResolutionService(slots scheduleRepo.ScheduleRepositoryInterface, exceptions exceptionRepo.ExceptionRepositoryInterface, c cache.Cache) ResolutionServiceInterface {
	return &ResolutionService{slots: slots, exceptions: exceptions, cache: c}
}

// Resolve computes the effective state of one cell. When a date is given,
// an exception on that date dominates the recurring schedule entirely;
// otherwise (or when no exception exists) the weekly slots decide. A cell
// with no data resolves to UNCONFIGURED, which is a normal result.
func (s *ResolutionService) Resolve(ctx context.Context, locationID uuid.UUID, dayOfWeek int, date *time.Time) (*entity.Resolution, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if dayOfWeek < constants.DayOfWeekMin || dayOfWeek > constants.DayOfWeekMax {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "day_of_week must be between 0 and 6", nil)
	}

	if date != nil {
		exc, err := s.exceptions.GetByLocationAndDate(ctx, locationID, *date)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "failed to read exception", err)
		}
		if exc != nil {
			if exc.IsBlocked() {
				return &entity.Resolution{
					Kind:   entity.KindException,
					Status: entity.StatusUnavailable,
					Note:   exc.Note,
				}, nil
			}
			return &entity.Resolution{
				Kind:   entity.KindException,
				Status: entity.StatusAvailable,
				Note:   exc.Note,
				Windows: []entity.ResolvedWindow{
					{Start: *exc.StartTime, End: *exc.EndTime},
				},
			}, nil
		}
	}

	return s.resolveWeekly(ctx, locationID, dayOfWeek, date == nil)
}

// ResolveWeek resolves all seven weekdays of a location from the recurring
// schedule alone (no exceptions apply without a date).
func (s *ResolutionService) ResolveWeek(ctx context.Context, locationID uuid.UUID) ([]entity.Resolution, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	week := make([]entity.Resolution, 0, 7)
	for day := constants.DayOfWeekMin; day <= constants.DayOfWeekMax; day++ {
		res, appErr := s.resolveWeekly(ctx, locationID, day, true)
		if appErr != nil {
			return nil, appErr
		}
		week = append(week, *res)
	}
	return week, nil
}

// ResolveMatrix resolves every calendar date in [from, to] for one
// location through the dated path, so exceptions land on their exact
// dates. Each day's weekday is derived from the date itself.
func (s *ResolutionService) ResolveMatrix(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]entity.DatedResolution, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	from = from.Truncate(24 * time.Hour)
	to = to.Truncate(24 * time.Hour)
	if to.Before(from) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "to must not be before from", nil)
	}
	if int(to.Sub(from).Hours()/24)+1 > constants.MatrixRangeMaxDays {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date range is too large", nil)
	}

	matrix := make([]entity.DatedResolution, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d
		res, appErr := s.Resolve(ctx, locationID, int(d.Weekday()), &date)
		if appErr != nil {
			return nil, appErr
		}
		matrix = append(matrix, entity.DatedResolution{
			Date:       d.Format(constants.DateLayout),
			DayOfWeek:  int(d.Weekday()),
			Resolution: *res,
		})
	}
	return matrix, nil
}

// resolveWeekly aggregates the recurring slots of one cell. Only the
// date-less path is cached: date-scoped reads are exception-sensitive and
// always hit the store.
func (s *ResolutionService) resolveWeekly(ctx context.Context, locationID uuid.UUID, dayOfWeek int, cacheable bool) (*entity.Resolution, *errors.AppError) {
	key := cache.ResolutionKey(locationID, dayOfWeek)
	if cacheable && s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var res entity.Resolution
			if jsonErr := json.Unmarshal([]byte(cached), &res); jsonErr == nil {
				return &res, nil
			}
			logger.Warn("ResolutionService:resolveWeekly cache decode failed", "key", key)
		}
	}

	slots, err := s.slots.ListSlots(ctx, locationID, dayOfWeek)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list slots", err)
	}

	res := aggregate(slots)

	if cacheable && s.cache != nil {
		if payload, jsonErr := json.Marshal(res); jsonErr == nil {
			if setErr := s.cache.Set(ctx, key, string(payload), constants.ResolutionCacheTTL); setErr != nil {
				logger.Warn("ResolutionService:resolveWeekly cache set failed", "key", key)
			}
		}
	}

	return res, nil
}
