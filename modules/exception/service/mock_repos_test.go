package service

import (
	"context"
	"database/sql"
	"time"

	"delivery-availability/modules/exception/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// memExceptionRepo enforces the one-exception-per-date rule the way the
// real table does, by failing duplicate creates with a unique violation.
type memExceptionRepo struct {
	byDate map[string]*entity.Exception
}

func newMemExceptionRepo() *memExceptionRepo {
	return &memExceptionRepo{byDate: map[string]*entity.Exception{}}
}

func dateKey(locationID uuid.UUID, date time.Time) string {
	return locationID.String() + "/" + date.Format("2006-01-02")
}

func (m *memExceptionRepo) GetByLocationAndDate(_ context.Context, locationID uuid.UUID, date time.Time) (*entity.Exception, error) {
	return m.byDate[dateKey(locationID, date)], nil
}

func (m *memExceptionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Exception, error) {
	for _, exc := range m.byDate {
		if exc.ID == id {
			copied := *exc
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memExceptionRepo) ListByLocationAndRange(_ context.Context, locationID uuid.UUID, from, to time.Time) ([]entity.Exception, error) {
	out := []entity.Exception{}
	for _, exc := range m.byDate {
		if exc.LocationID == locationID && !exc.ExceptionDate.Before(from) && !exc.ExceptionDate.After(to) {
			out = append(out, *exc)
		}
	}
	return out, nil
}

func (m *memExceptionRepo) Create(_ context.Context, exc *entity.Exception) (*entity.Exception, error) {
	key := dateKey(exc.LocationID, exc.ExceptionDate)
	if _, exists := m.byDate[key]; exists {
		return nil, &pq.Error{Code: "23505"}
	}
	created := *exc
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.byDate[key] = &created
	return &created, nil
}

func (m *memExceptionRepo) Update(_ context.Context, exc *entity.Exception) error {
	key := dateKey(exc.LocationID, exc.ExceptionDate)
	if _, exists := m.byDate[key]; !exists {
		return sql.ErrNoRows
	}
	copied := *exc
	m.byDate[key] = &copied
	return nil
}

func (m *memExceptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for key, exc := range m.byDate {
		if exc.ID == id {
			delete(m.byDate, key)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memExceptionRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for key, exc := range m.byDate {
		if exc.ExceptionDate.Before(cutoff) {
			delete(m.byDate, key)
			removed++
		}
	}
	return removed, nil
}
