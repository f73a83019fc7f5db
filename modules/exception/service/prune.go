package service

import (
	"context"
	"time"

	"delivery-availability/core/config"
	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/core/logger"

	"github.com/hibiken/asynq"
)

const defaultRetentionDays = 90

// PruneExpired deletes exceptions whose date fell out of the retention
// window and returns how many rows went away.
func (s *ExceptionService) PruneExpired(ctx context.Context) (int64, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	days := defaultRetentionDays
	if cfg, ok := config.GetSafe(); ok && cfg.Retention.ExceptionDays > 0 {
		days = cfg.Retention.ExceptionDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	removed, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrDeleteFailed, "failed to prune exceptions", err)
	}
	return removed, nil
}

// NewPruneTaskHandler adapts PruneExpired to the task queue.
func NewPruneTaskHandler(svc ExceptionServiceInterface) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		removed, appErr := svc.PruneExpired(ctx)
		if appErr != nil {
			logger.Error("ExceptionService:PruneExpired", appErr)
			return appErr
		}
		logger.Info("pruned expired exceptions", "removed", removed)
		return nil
	}
}
