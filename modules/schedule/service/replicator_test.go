package service

import (
	"context"
	"testing"

	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/modules/schedule/entity"

	"github.com/google/uuid"
)

type slotShape struct {
	start, end, status string
}

func cellShapes(t *testing.T, repo *memScheduleRepo, key entity.CellKey) []slotShape {
	t.Helper()
	slots, err := repo.ListSlots(context.Background(), key.LocationID, key.DayOfWeek)
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	out := make([]slotShape, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotShape{start: s.StartTime, end: s.EndTime, status: s.Status})
	}
	return out
}

func shapesEqual(a, b []slotShape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReplicateCopiesSourceOntoTarget(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB := uuid.New(), uuid.New()
	source := entity.CellKey{LocationID: locA, DayOfWeek: 1}
	target := entity.CellKey{LocationID: locB, DayOfWeek: 4}

	repo.seed(locA, 1, "08:00", "10:00", constants.SlotStatusAvailable, entity.JSONB{"dock": "north"})
	repo.seed(locA, 1, "14:00", "16:00", constants.SlotStatusUnavailable, nil)
	repo.seed(locB, 4, "09:00", "17:00", constants.SlotStatusAvailable, nil)

	report, appErr := r.Replicate(context.Background(), source, target)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if report.DeletesDone != 1 || report.CreatesDone != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Partial() {
		t.Fatal("completed replication must not be partial")
	}

	got := cellShapes(t, repo, target)
	want := []slotShape{
		{"08:00", "10:00", constants.SlotStatusAvailable},
		{"14:00", "16:00", constants.SlotStatusUnavailable},
	}
	if !shapesEqual(got, want) {
		t.Fatalf("target cell mismatch: got %v want %v", got, want)
	}

	// Metadata travels with the clone.
	targetSlots, _ := repo.ListSlots(context.Background(), locB, 4)
	if targetSlots[0].Metadata["dock"] != "north" {
		t.Fatalf("metadata must be copied, got %v", targetSlots[0].Metadata)
	}
}

func TestReplicateDoesNotMutateSource(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB := uuid.New(), uuid.New()
	source := entity.CellKey{LocationID: locA, DayOfWeek: 2}
	target := entity.CellKey{LocationID: locB, DayOfWeek: 2}

	repo.seed(locA, 2, "08:00", "12:00", constants.SlotStatusAvailable, nil)
	before, _ := repo.ListSlots(context.Background(), locA, 2)

	if _, appErr := r.Replicate(context.Background(), source, target); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	after, _ := repo.ListSlots(context.Background(), locA, 2)
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Fatal("replication must not touch the source cell")
	}
}

func TestReplicateIsIdempotent(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB := uuid.New(), uuid.New()
	source := entity.CellKey{LocationID: locA, DayOfWeek: 3}
	target := entity.CellKey{LocationID: locB, DayOfWeek: 5}

	repo.seed(locA, 3, "08:00", "10:00", constants.SlotStatusAvailable, nil)
	repo.seed(locA, 3, "10:00", "12:00", constants.SlotStatusUnavailable, nil)

	if _, appErr := r.Replicate(context.Background(), source, target); appErr != nil {
		t.Fatalf("first replication: %v", appErr)
	}
	first := cellShapes(t, repo, target)

	if _, appErr := r.Replicate(context.Background(), source, target); appErr != nil {
		t.Fatalf("second replication: %v", appErr)
	}
	second := cellShapes(t, repo, target)

	if !shapesEqual(first, second) {
		t.Fatalf("replication must be idempotent: first %v second %v", first, second)
	}
}

func TestReplicateEmptySourceClearsTarget(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB := uuid.New(), uuid.New()
	source := entity.CellKey{LocationID: locA, DayOfWeek: 0}
	target := entity.CellKey{LocationID: locB, DayOfWeek: 6}

	repo.seed(locB, 6, "08:00", "10:00", constants.SlotStatusAvailable, nil)
	repo.seed(locB, 6, "14:00", "16:00", constants.SlotStatusAvailable, nil)

	report, appErr := r.Replicate(context.Background(), source, target)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !report.Cleared {
		t.Fatal("empty source must report a clear")
	}
	if report.DeletesDone != 2 || report.CreatesRequested != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
	if got := cellShapes(t, repo, target); len(got) != 0 {
		t.Fatalf("target must be empty after clear, got %v", got)
	}
}

func TestReplicateSameCellIsNoOp(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	loc := uuid.New()
	key := entity.CellKey{LocationID: loc, DayOfWeek: 1}
	repo.seed(loc, 1, "08:00", "10:00", constants.SlotStatusAvailable, nil)

	report, appErr := r.Replicate(context.Background(), key, key)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !report.NoOp {
		t.Fatal("identical source and target must be a no-op")
	}
	if got := cellShapes(t, repo, key); len(got) != 1 {
		t.Fatalf("no-op must leave the cell untouched, got %v", got)
	}
}

func TestReplicateSameLocationDifferentDay(t *testing.T) {
	// The source snapshot is taken before any mutation, so copying within
	// one location must behave the same as copying across locations.
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	loc := uuid.New()
	source := entity.CellKey{LocationID: loc, DayOfWeek: 1}
	target := entity.CellKey{LocationID: loc, DayOfWeek: 2}

	repo.seed(loc, 1, "08:00", "10:00", constants.SlotStatusAvailable, nil)
	repo.seed(loc, 2, "13:00", "15:00", constants.SlotStatusUnavailable, nil)

	if _, appErr := r.Replicate(context.Background(), source, target); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	want := []slotShape{{"08:00", "10:00", constants.SlotStatusAvailable}}
	if got := cellShapes(t, repo, target); !shapesEqual(got, want) {
		t.Fatalf("target mismatch: got %v want %v", got, want)
	}
	if got := cellShapes(t, repo, source); !shapesEqual(got, want) {
		t.Fatalf("source mismatch: got %v want %v", got, want)
	}
}

func TestReplicateLastSequentialCompletionWins(t *testing.T) {
	// Two sources copied onto the same target, one after the other: the
	// target must end up equal to whichever copy completed last.
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB, locC := uuid.New(), uuid.New(), uuid.New()
	first := entity.CellKey{LocationID: locA, DayOfWeek: 1}
	second := entity.CellKey{LocationID: locB, DayOfWeek: 1}
	target := entity.CellKey{LocationID: locC, DayOfWeek: 1}

	repo.seed(locA, 1, "08:00", "10:00", constants.SlotStatusAvailable, nil)
	repo.seed(locA, 1, "14:00", "16:00", constants.SlotStatusAvailable, nil)
	repo.seed(locB, 1, "09:00", "11:00", constants.SlotStatusUnavailable, nil)

	if _, appErr := r.Replicate(context.Background(), first, target); appErr != nil {
		t.Fatalf("first replication: %v", appErr)
	}
	if _, appErr := r.Replicate(context.Background(), second, target); appErr != nil {
		t.Fatalf("second replication: %v", appErr)
	}

	want := cellShapes(t, repo, second)
	if got := cellShapes(t, repo, target); !shapesEqual(got, want) {
		t.Fatalf("target must match the last completed source: got %v want %v", got, want)
	}

	// And in the opposite order the first source wins instead.
	if _, appErr := r.Replicate(context.Background(), first, target); appErr != nil {
		t.Fatalf("third replication: %v", appErr)
	}
	want = cellShapes(t, repo, first)
	if got := cellShapes(t, repo, target); !shapesEqual(got, want) {
		t.Fatalf("target must track the latest copy: got %v want %v", got, want)
	}
}

func TestReplicateDeletesPrecedeCreates(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB := uuid.New(), uuid.New()
	source := entity.CellKey{LocationID: locA, DayOfWeek: 1}
	target := entity.CellKey{LocationID: locB, DayOfWeek: 1}

	repo.seed(locA, 1, "08:00", "10:00", constants.SlotStatusAvailable, nil)
	repo.seed(locB, 1, "09:00", "11:00", constants.SlotStatusAvailable, nil)
	repo.ops = nil

	if _, appErr := r.Replicate(context.Background(), source, target); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	seenCreate := false
	for _, op := range repo.ops {
		if op == "create" {
			seenCreate = true
		}
		if op == "delete" && seenCreate {
			t.Fatalf("delete after create in op sequence %v", repo.ops)
		}
	}
}

func TestReplicatePartialFailureDuringCreate(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB := uuid.New(), uuid.New()
	source := entity.CellKey{LocationID: locA, DayOfWeek: 1}
	target := entity.CellKey{LocationID: locB, DayOfWeek: 1}

	repo.seed(locA, 1, "08:00", "10:00", constants.SlotStatusAvailable, nil)
	repo.seed(locA, 1, "11:00", "13:00", constants.SlotStatusAvailable, nil)
	repo.seed(locA, 1, "14:00", "16:00", constants.SlotStatusAvailable, nil)

	// The three seeds used three create calls; fail on the fifth, i.e. the
	// second clone.
	repo.failCreateAt = 5

	report, appErr := r.Replicate(context.Background(), source, target)
	if appErr == nil {
		t.Fatal("expected a partial-replication error")
	}
	if appErr.Code != errors.ErrReplicationPartial {
		t.Fatalf("expected %s, got %s", errors.ErrReplicationPartial, appErr.Code)
	}
	if !report.Partial() {
		t.Fatalf("report must be partial: %+v", report)
	}
	if report.CreatesRequested != 3 || report.CreatesDone != 1 {
		t.Fatalf("unexpected create counts in %+v", report)
	}

	// The error carries the report so the caller can re-resolve the target.
	detail, ok := appErr.Details.(*ReplicationReport)
	if !ok {
		t.Fatalf("expected report details, got %T", appErr.Details)
	}
	if detail.Target != target {
		t.Fatalf("report must identify the target cell, got %+v", detail.Target)
	}
}

func TestReplicatePartialFailureDuringDelete(t *testing.T) {
	repo := newMemScheduleRepo()
	r := NewReplicator(repo, newMemCache())

	locA, locB := uuid.New(), uuid.New()
	source := entity.CellKey{LocationID: locA, DayOfWeek: 1}
	target := entity.CellKey{LocationID: locB, DayOfWeek: 1}

	repo.seed(locA, 1, "08:00", "10:00", constants.SlotStatusAvailable, nil)
	repo.seed(locB, 1, "09:00", "11:00", constants.SlotStatusAvailable, nil)
	repo.seed(locB, 1, "12:00", "14:00", constants.SlotStatusAvailable, nil)

	repo.failDeleteAt = 2

	report, appErr := r.Replicate(context.Background(), source, target)
	if appErr == nil || appErr.Code != errors.ErrReplicationPartial {
		t.Fatalf("expected partial-replication error, got %v", appErr)
	}
	if report.DeletesRequested != 2 || report.DeletesDone != 1 {
		t.Fatalf("unexpected delete counts in %+v", report)
	}
	if report.CreatesDone != 0 {
		t.Fatal("no create may run once the delete phase fails")
	}
}
