package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	coreEntity "delivery-availability/core/entity"
	"delivery-availability/core/errors"
	"delivery-availability/core/params"
	availabilityEntity "delivery-availability/modules/availability/entity"
	locationEntity "delivery-availability/modules/location/entity"

	"github.com/google/uuid"
)

type memLocationRepo struct {
	active []locationEntity.Location
}

func (m *memLocationRepo) List(_ context.Context, p *params.QueryParams) (*coreEntity.Pagination[locationEntity.Location], error) {
	return &coreEntity.Pagination[locationEntity.Location]{
		Items:      m.active,
		TotalItems: len(m.active),
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (m *memLocationRepo) ListActive(_ context.Context) ([]locationEntity.Location, error) {
	return m.active, nil
}

func (m *memLocationRepo) GetByID(_ context.Context, id uuid.UUID) (*locationEntity.Location, error) {
	for i := range m.active {
		if m.active[i].ID == id {
			return &m.active[i], nil
		}
	}
	return nil, nil
}

func (m *memLocationRepo) Create(_ context.Context, loc *locationEntity.Location) (*locationEntity.Location, error) {
	created := *loc
	created.ID = uuid.New()
	m.active = append(m.active, created)
	return &created, nil
}

func (m *memLocationRepo) Update(_ context.Context, _ *locationEntity.Location) error { return nil }
func (m *memLocationRepo) Delete(_ context.Context, _ uuid.UUID) error               { return nil }

type stubResolver struct {
	weeks map[uuid.UUID][]availabilityEntity.Resolution
}

func (s *stubResolver) Resolve(_ context.Context, locationID uuid.UUID, _ int, _ *time.Time) (*availabilityEntity.Resolution, *errors.AppError) {
	week := s.weeks[locationID]
	return &week[0], nil
}

func (s *stubResolver) ResolveWeek(_ context.Context, locationID uuid.UUID) ([]availabilityEntity.Resolution, *errors.AppError) {
	return s.weeks[locationID], nil
}

func (s *stubResolver) ResolveMatrix(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]availabilityEntity.DatedResolution, *errors.AppError) {
	return nil, nil
}

type captureUploader struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (u *captureUploader) Upload(_ context.Context, key string, body []byte, contentType string) error {
	if u.err != nil {
		return u.err
	}
	u.key = key
	u.body = body
	u.contentType = contentType
	return nil
}

func unconfiguredWeek() []availabilityEntity.Resolution {
	week := make([]availabilityEntity.Resolution, 7)
	for i := range week {
		week[i] = availabilityEntity.Resolution{
			Kind:   availabilityEntity.KindDefault,
			Status: availabilityEntity.StatusUnconfigured,
		}
	}
	return week
}

func newLocation(name, code string) locationEntity.Location {
	loc := locationEntity.Location{Name: name, Code: code, Active: true}
	loc.ID = uuid.New()
	return loc
}

func TestExportMatrix(t *testing.T) {
	locA := newLocation("North Depot", "north-depot")
	locB := newLocation("South Depot", "south-depot")

	weekA := unconfiguredWeek()
	weekA[1] = availabilityEntity.Resolution{
		Kind:   availabilityEntity.KindRegular,
		Status: availabilityEntity.StatusAvailable,
		Windows: []availabilityEntity.ResolvedWindow{
			{Start: "08:00", End: "12:00", Status: "available"},
		},
	}

	uploader := &captureUploader{}
	svc := NewExportService(
		&memLocationRepo{active: []locationEntity.Location{locA, locB}},
		&stubResolver{weeks: map[uuid.UUID][]availabilityEntity.Resolution{
			locA.ID: weekA,
			locB.ID: unconfiguredWeek(),
		}},
		uploader,
	)

	key, appErr := svc.ExportMatrix(context.Background())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !strings.HasPrefix(key, "availability/matrix-") || !strings.HasSuffix(key, ".json") {
		t.Fatalf("unexpected object key %q", key)
	}
	if uploader.contentType != "application/json" {
		t.Fatalf("unexpected content type %q", uploader.contentType)
	}

	var doc matrixDocument
	if err := json.Unmarshal(uploader.body, &doc); err != nil {
		t.Fatalf("uploaded body is not valid JSON: %v", err)
	}
	if len(doc.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(doc.Locations))
	}
	for _, lm := range doc.Locations {
		if len(lm.Days) != 7 {
			t.Fatalf("location %s must carry 7 days, got %d", lm.Code, len(lm.Days))
		}
	}
	if doc.Locations[0].Days[1].Status != availabilityEntity.StatusAvailable {
		t.Fatalf("Monday of the first location must be AVAILABLE, got %s", doc.Locations[0].Days[1].Status)
	}
}

func TestExportMatrixUploadFailure(t *testing.T) {
	loc := newLocation("North Depot", "north-depot")
	svc := NewExportService(
		&memLocationRepo{active: []locationEntity.Location{loc}},
		&stubResolver{weeks: map[uuid.UUID][]availabilityEntity.Resolution{loc.ID: unconfiguredWeek()}},
		&captureUploader{err: fmt.Errorf("bucket unavailable")},
	)

	if _, appErr := svc.ExportMatrix(context.Background()); appErr == nil {
		t.Fatal("upload failure must surface")
	}
}
