package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"delivery-availability/modules/schedule/entity"

	"github.com/google/uuid"
)

// memScheduleRepo is an in-memory stand-in for the slot store. Listings
// come back in creation order. The failDeleteAt / failCreateAt knobs force
// the Nth call (1-based) of that kind to fail, for interruption tests.
type memScheduleRepo struct {
	mu    sync.Mutex
	slots map[uuid.UUID]entity.WeeklySlot
	order []uuid.UUID

	failDeleteAt int
	failCreateAt int
	deleteCalls  int
	createCalls  int
	ops          []string
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{slots: map[uuid.UUID]entity.WeeklySlot{}}
}

func (m *memScheduleRepo) seed(locationID uuid.UUID, day int, start, end, status string, metadata entity.JSONB) entity.WeeklySlot {
	slot, _ := m.CreateSlot(context.Background(), &entity.WeeklySlot{
		LocationID: locationID,
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
		Metadata:   metadata,
	})
	return *slot
}

func (m *memScheduleRepo) ListSlots(_ context.Context, locationID uuid.UUID, dayOfWeek int) ([]entity.WeeklySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []entity.WeeklySlot{}
	for _, id := range m.order {
		slot, ok := m.slots[id]
		if ok && slot.LocationID == locationID && slot.DayOfWeek == dayOfWeek {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) ListByLocation(_ context.Context, locationID uuid.UUID) ([]entity.WeeklySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []entity.WeeklySlot{}
	for _, id := range m.order {
		slot, ok := m.slots[id]
		if ok && slot.LocationID == locationID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) GetSlotByID(_ context.Context, id uuid.UUID) (*entity.WeeklySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[id]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (m *memScheduleRepo) CreateSlot(_ context.Context, slot *entity.WeeklySlot) (*entity.WeeklySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	m.ops = append(m.ops, "create")
	if m.failCreateAt > 0 && m.createCalls >= m.failCreateAt {
		return nil, fmt.Errorf("forced create failure")
	}

	created := *slot
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.slots[created.ID] = created
	m.order = append(m.order, created.ID)
	return &created, nil
}

func (m *memScheduleRepo) DeleteSlot(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteCalls++
	m.ops = append(m.ops, "delete")
	if m.failDeleteAt > 0 && m.deleteCalls >= m.failDeleteAt {
		return fmt.Errorf("forced delete failure")
	}

	if _, ok := m.slots[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.slots, id)
	return nil
}

// memCache records resolution-cache traffic so tests can assert
// invalidation without a running redis.
type memCache struct {
	mu      sync.Mutex
	values  map[string]string
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{values: map[string]string{}}
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("cache miss: %s", key)
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.values, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func (c *memCache) Expire(_ context.Context, _ string, _ time.Duration) error {
	return nil
}
