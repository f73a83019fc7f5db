package service

import (
	"context"
	"testing"
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/modules/exception/dto"

	"github.com/google/uuid"
)

func strptr(s string) *string { return &s }

func TestCreateExceptionBlocked(t *testing.T) {
	svc := NewExceptionService(newMemExceptionRepo())

	created, appErr := svc.Create(context.Background(), &dto.CreateExceptionRequest{
		LocationID:    uuid.NewString(),
		ExceptionDate: "2024-06-03",
		Type:          constants.ExceptionTypeBlocked,
		Note:          "public holiday",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if created.Type != constants.ExceptionTypeBlocked {
		t.Fatalf("unexpected type %s", created.Type)
	}
	if created.Source != constants.ExceptionSourceUser {
		t.Fatalf("source must default to user, got %s", created.Source)
	}
	if created.StartTime != nil || created.EndTime != nil {
		t.Fatal("blocked exceptions carry no times")
	}
}

func TestCreateExceptionSecondForSameDateConflicts(t *testing.T) {
	svc := NewExceptionService(newMemExceptionRepo())
	loc := uuid.NewString()

	first := &dto.CreateExceptionRequest{
		LocationID:    loc,
		ExceptionDate: "2024-06-03",
		Type:          constants.ExceptionTypeBlocked,
	}
	if _, appErr := svc.Create(context.Background(), first); appErr != nil {
		t.Fatalf("first create failed: %v", appErr)
	}

	second := &dto.CreateExceptionRequest{
		LocationID:    loc,
		ExceptionDate: "2024-06-03",
		Type:          constants.ExceptionTypeSpecialHours,
		StartTime:     strptr("10:00"),
		EndTime:       strptr("14:00"),
	}
	_, appErr := svc.Create(context.Background(), second)
	if appErr == nil {
		t.Fatal("second exception for the same date must conflict")
	}
	if appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("expected %s, got %s", errors.ErrAlreadyExists, appErr.Code)
	}
}

func TestCreateExceptionSameDateDifferentLocations(t *testing.T) {
	svc := NewExceptionService(newMemExceptionRepo())

	for i := 0; i < 2; i++ {
		req := &dto.CreateExceptionRequest{
			LocationID:    uuid.NewString(),
			ExceptionDate: "2024-06-03",
			Type:          constants.ExceptionTypeBlocked,
		}
		if _, appErr := svc.Create(context.Background(), req); appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
	}
}

func TestCreateExceptionTypeTimeRules(t *testing.T) {
	svc := NewExceptionService(newMemExceptionRepo())

	cases := []struct {
		name string
		req  dto.CreateExceptionRequest
	}{
		{"blocked with times", dto.CreateExceptionRequest{Type: constants.ExceptionTypeBlocked, StartTime: strptr("08:00"), EndTime: strptr("10:00")}},
		{"open_extra without times", dto.CreateExceptionRequest{Type: constants.ExceptionTypeOpenExtra}},
		{"special_hours missing end", dto.CreateExceptionRequest{Type: constants.ExceptionTypeSpecialHours, StartTime: strptr("08:00")}},
		{"inverted window", dto.CreateExceptionRequest{Type: constants.ExceptionTypeSpecialHours, StartTime: strptr("14:00"), EndTime: strptr("10:00")}},
		{"unpadded time", dto.CreateExceptionRequest{Type: constants.ExceptionTypeOpenExtra, StartTime: strptr("8:00"), EndTime: strptr("10:00")}},
		{"hour out of range", dto.CreateExceptionRequest{Type: constants.ExceptionTypeOpenExtra, StartTime: strptr("24:00"), EndTime: strptr("25:00")}},
		{"non-digit time", dto.CreateExceptionRequest{Type: constants.ExceptionTypeSpecialHours, StartTime: strptr("0a:00"), EndTime: strptr("10:00")}},
		{"unknown type", dto.CreateExceptionRequest{Type: "half_day"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.LocationID = uuid.NewString()
			tc.req.ExceptionDate = "2024-06-03"
			if _, appErr := svc.Create(context.Background(), &tc.req); appErr == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestUpdateExceptionKeepsDate(t *testing.T) {
	repo := newMemExceptionRepo()
	svc := NewExceptionService(repo)
	loc := uuid.NewString()

	created, appErr := svc.Create(context.Background(), &dto.CreateExceptionRequest{
		LocationID:    loc,
		ExceptionDate: "2024-06-03",
		Type:          constants.ExceptionTypeBlocked,
	})
	if appErr != nil {
		t.Fatalf("create failed: %v", appErr)
	}

	id, _ := uuid.Parse(created.ID)
	updated, appErr := svc.Update(context.Background(), id, &dto.UpdateExceptionRequest{
		Type:      constants.ExceptionTypeSpecialHours,
		StartTime: strptr("10:00"),
		EndTime:   strptr("14:00"),
		Note:      "short day",
	})
	if appErr != nil {
		t.Fatalf("update failed: %v", appErr)
	}
	if updated.ExceptionDate != "2024-06-03" {
		t.Fatalf("the date is immutable, got %s", updated.ExceptionDate)
	}
	if updated.Type != constants.ExceptionTypeSpecialHours || updated.Note != "short day" {
		t.Fatalf("unexpected update result %+v", updated)
	}
}

func TestUpdateExceptionUnknownID(t *testing.T) {
	svc := NewExceptionService(newMemExceptionRepo())

	_, appErr := svc.Update(context.Background(), uuid.New(), &dto.UpdateExceptionRequest{
		Type: constants.ExceptionTypeBlocked,
	})
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not found, got %v", appErr)
	}
}

func TestDeleteExceptionUnknownID(t *testing.T) {
	svc := NewExceptionService(newMemExceptionRepo())

	appErr := svc.Delete(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not found, got %v", appErr)
	}
}

func TestListByLocationAndRange(t *testing.T) {
	svc := NewExceptionService(newMemExceptionRepo())
	loc := uuid.NewString()

	for _, date := range []string{"2024-06-03", "2024-06-15", "2024-07-01"} {
		if _, appErr := svc.Create(context.Background(), &dto.CreateExceptionRequest{
			LocationID:    loc,
			ExceptionDate: date,
			Type:          constants.ExceptionTypeBlocked,
		}); appErr != nil {
			t.Fatalf("create %s failed: %v", date, appErr)
		}
	}

	id, _ := uuid.Parse(loc)
	from, _ := time.Parse(constants.DateLayout, "2024-06-01")
	to, _ := time.Parse(constants.DateLayout, "2024-06-30")
	excs, appErr := svc.ListByLocationAndRange(context.Background(), id, from, to)
	if appErr != nil {
		t.Fatalf("list failed: %v", appErr)
	}
	if len(excs) != 2 {
		t.Fatalf("expected 2 exceptions in June, got %d", len(excs))
	}

	if _, appErr := svc.ListByLocationAndRange(context.Background(), id, to, from); appErr == nil {
		t.Fatal("inverted range must be rejected")
	}
}

func TestPruneExpired(t *testing.T) {
	repo := newMemExceptionRepo()
	svc := NewExceptionService(repo)
	loc := uuid.NewString()

	old := time.Now().UTC().AddDate(-1, 0, 0).Format(constants.DateLayout)
	fresh := time.Now().UTC().AddDate(0, 0, 7).Format(constants.DateLayout)
	for _, date := range []string{old, fresh} {
		if _, appErr := svc.Create(context.Background(), &dto.CreateExceptionRequest{
			LocationID:    loc,
			ExceptionDate: date,
			Type:          constants.ExceptionTypeBlocked,
		}); appErr != nil {
			t.Fatalf("create %s failed: %v", date, appErr)
		}
	}

	removed, appErr := svc.PruneExpired(context.Background())
	if appErr != nil {
		t.Fatalf("prune failed: %v", appErr)
	}
	if removed != 1 {
		t.Fatalf("expected 1 pruned exception, got %d", removed)
	}
	if len(repo.byDate) != 1 {
		t.Fatalf("expected 1 remaining exception, got %d", len(repo.byDate))
	}
}
