package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	exceptionEntity "delivery-availability/modules/exception/entity"
	scheduleEntity "delivery-availability/modules/schedule/entity"

	"github.com/google/uuid"
)

// memSlotRepo is a read-only in-memory slot store for resolution tests.
type memSlotRepo struct {
	slots     []scheduleEntity.WeeklySlot
	listCalls int
}

func (m *memSlotRepo) add(locationID uuid.UUID, day int, start, end, status string) {
	slot := scheduleEntity.WeeklySlot{
		LocationID: locationID,
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	}
	slot.ID = uuid.New()
	m.slots = append(m.slots, slot)
}

func (m *memSlotRepo) ListSlots(_ context.Context, locationID uuid.UUID, dayOfWeek int) ([]scheduleEntity.WeeklySlot, error) {
	m.listCalls++
	out := []scheduleEntity.WeeklySlot{}
	for _, s := range m.slots {
		if s.LocationID == locationID && s.DayOfWeek == dayOfWeek {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSlotRepo) ListByLocation(_ context.Context, locationID uuid.UUID) ([]scheduleEntity.WeeklySlot, error) {
	out := []scheduleEntity.WeeklySlot{}
	for _, s := range m.slots {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSlotRepo) GetSlotByID(_ context.Context, id uuid.UUID) (*scheduleEntity.WeeklySlot, error) {
	for i := range m.slots {
		if m.slots[i].ID == id {
			return &m.slots[i], nil
		}
	}
	return nil, nil
}

func (m *memSlotRepo) CreateSlot(_ context.Context, slot *scheduleEntity.WeeklySlot) (*scheduleEntity.WeeklySlot, error) {
	created := *slot
	created.ID = uuid.New()
	m.slots = append(m.slots, created)
	return &created, nil
}

func (m *memSlotRepo) DeleteSlot(_ context.Context, id uuid.UUID) error {
	for i := range m.slots {
		if m.slots[i].ID == id {
			m.slots = append(m.slots[:i], m.slots[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// memExceptionRepo keys exceptions by location and date.
type memExceptionRepo struct {
	byDate map[string]*exceptionEntity.Exception
}

func newMemExceptionRepo() *memExceptionRepo {
	return &memExceptionRepo{byDate: map[string]*exceptionEntity.Exception{}}
}

func dateKey(locationID uuid.UUID, date time.Time) string {
	return locationID.String() + "/" + date.Format("2006-01-02")
}

func (m *memExceptionRepo) put(locationID uuid.UUID, date time.Time, excType string, start, end *string, note string) {
	exc := &exceptionEntity.Exception{
		LocationID:    locationID,
		ExceptionDate: date,
		Type:          excType,
		StartTime:     start,
		EndTime:       end,
		Note:          note,
		Source:        "user",
	}
	exc.ID = uuid.New()
	m.byDate[dateKey(locationID, date)] = exc
}

func (m *memExceptionRepo) GetByLocationAndDate(_ context.Context, locationID uuid.UUID, date time.Time) (*exceptionEntity.Exception, error) {
	return m.byDate[dateKey(locationID, date)], nil
}

func (m *memExceptionRepo) GetByID(_ context.Context, id uuid.UUID) (*exceptionEntity.Exception, error) {
	for _, exc := range m.byDate {
		if exc.ID == id {
			return exc, nil
		}
	}
	return nil, nil
}

func (m *memExceptionRepo) ListByLocationAndRange(_ context.Context, locationID uuid.UUID, from, to time.Time) ([]exceptionEntity.Exception, error) {
	out := []exceptionEntity.Exception{}
	for _, exc := range m.byDate {
		if exc.LocationID == locationID && !exc.ExceptionDate.Before(from) && !exc.ExceptionDate.After(to) {
			out = append(out, *exc)
		}
	}
	return out, nil
}

func (m *memExceptionRepo) Create(_ context.Context, exc *exceptionEntity.Exception) (*exceptionEntity.Exception, error) {
	created := *exc
	created.ID = uuid.New()
	m.byDate[dateKey(exc.LocationID, exc.ExceptionDate)] = &created
	return &created, nil
}

func (m *memExceptionRepo) Update(_ context.Context, exc *exceptionEntity.Exception) error {
	m.byDate[dateKey(exc.LocationID, exc.ExceptionDate)] = exc
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

// memCache is a map-backed resolution cache.
type memCache struct {
	values map[string]string
}

func newMemCache() *memCache {
	return &memCache{values: map[string]string{}}
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("cache miss: %s", key)
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}

func (c *memCache) Expire(_ context.Context, _ string, _ time.Duration) error {
	return nil
}
