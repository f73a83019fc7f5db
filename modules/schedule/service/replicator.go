package service

import (
	"context"

	"delivery-availability/core/cache"
	"delivery-availability/core/errors"
	"delivery-availability/core/logger"
	"delivery-availability/modules/schedule/entity"
	"delivery-availability/modules/schedule/repository"
)

// ReplicationReport records what one replication actually did. Requested and
// done counts differ only when the sequence was interrupted partway.
type ReplicationReport struct {
	Source entity.CellKey `json:"source"`
	Target entity.CellKey `json:"target"`

	SourceSlots      int  `json:"source_slots"`
	DeletesRequested int  `json:"deletes_requested"`
	DeletesDone      int  `json:"deletes_done"`
	CreatesRequested int  `json:"creates_requested"`
	CreatesDone      int  `json:"creates_done"`
	Cleared          bool `json:"cleared"`
	NoOp             bool `json:"no_op"`
}

// Partial reports whether the target cell was left between states.
func (r *ReplicationReport) Partial() bool {
	return r.DeletesDone < r.DeletesRequested || r.CreatesDone < r.CreatesRequested
}

// Replicator implements the drag-a-cell copy-or-clear protocol. It writes
// through the repository directly: the source cell was validated when its
// slots were written, and the target has just been cleared, so a completed run
// cannot introduce overlap.
//
// The sequence is not transactional. Deletes for the target cell fully precede
// creates; a failure partway surfaces as ErrReplicationPartial with the report
// attached, and the caller must re-resolve the target cell rather than assume
// the intended state.
type Replicator struct {
	repo  repository.ScheduleRepositoryInterface
	cache cache.Cache
}

func NewReplicator(repo repository.ScheduleRepositoryInterface, c cache.Cache) *Replicator {
	return &Replicator{repo: repo, cache: c}
}

// Replicate copies the source cell's slots onto the target cell, or clears
// the target when the source is empty. The source is never mutated.
func (r *Replicator) Replicate(ctx context.Context, source, target entity.CellKey) (*ReplicationReport, *errors.AppError) {
	report := &ReplicationReport{Source: source, Target: target}

	if source == target {
		report.NoOp = true
		return report, nil
	}

	// Snapshot the source before any mutation. A same-location copy may
	// share rows with the target, so the source must not be read again.
	sourceSlots, err := r.repo.ListSlots(ctx, source.LocationID, source.DayOfWeek)
	if err != nil {
		return report, errors.NewAppError(errors.ErrGetFailed, "failed to read source cell", err)
	}
	report.SourceSlots = len(sourceSlots)

	targetExisting, err := r.repo.ListSlots(ctx, target.LocationID, target.DayOfWeek)
	if err != nil {
		return report, errors.NewAppError(errors.ErrGetFailed, "failed to read target cell", err)
	}
	report.DeletesRequested = len(targetExisting)
	report.CreatesRequested = len(sourceSlots)

	defer cache.InvalidateCell(ctx, r.cache, target.LocationID, target.DayOfWeek)

	// All deletes for the target cell must complete before any create.
	for _, slot := range targetExisting {
		if err := r.repo.DeleteSlot(ctx, slot.ID); err != nil {
			logger.Error("Replicator:Replicate:DeleteSlot",
				"target", target.String(), "slot_id", slot.ID, "error", err)
			return report, errors.NewAppError(errors.ErrReplicationPartial,
				"replication interrupted during delete phase; re-resolve the target cell", err).
				WithDetails(report)
		}
		report.DeletesDone++
	}

	if len(sourceSlots) == 0 {
		// Dragging an empty cell clears the target.
		report.Cleared = true
		logger.Info("Replicator:Replicate:Cleared",
			"source", source.String(), "target", target.String(), "deletes", report.DeletesDone)
		return report, nil
	}

	for _, src := range sourceSlots {
		clone := &entity.WeeklySlot{
			LocationID: target.LocationID,
			DayOfWeek:  target.DayOfWeek,
			StartTime:  src.StartTime,
			EndTime:    src.EndTime,
			Status:     src.Status,
			Metadata:   src.Metadata,
		}
		if _, err := r.repo.CreateSlot(ctx, clone); err != nil {
			logger.Error("Replicator:Replicate:CreateSlot",
				"target", target.String(), "error", err)
			return report, errors.NewAppError(errors.ErrReplicationPartial,
				"replication interrupted during create phase; re-resolve the target cell", err).
				WithDetails(report)
		}
		report.CreatesDone++
	}

	logger.Info("Replicator:Replicate:Done",
		"source", source.String(), "target", target.String(),
		"deletes", report.DeletesDone, "creates", report.CreatesDone)
	return report, nil
}
