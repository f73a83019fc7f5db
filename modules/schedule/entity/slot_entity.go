package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"delivery-availability/core/entity"

	"github.com/google/uuid"
)

// WeeklySlot is a recurring availability window for one location on one
// weekday. Times are zero-padded "HH:MM" wall-clock values.
type WeeklySlot struct {
	LocationID uuid.UUID `db:"location_id" json:"location_id"`
	DayOfWeek  int       `db:"day_of_week" json:"day_of_week"`
	StartTime  string    `db:"start_time" json:"start_time"`
	EndTime    string    `db:"end_time" json:"end_time"`
	Status     string    `db:"status" json:"status"`
	Metadata   JSONB     `db:"metadata" json:"metadata,omitempty"`
	entity.BaseEntity
}

// JSONB is an opaque key/value bag, stored as jsonb and passed through
// unmodified by every operation.
type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

// CellKey addresses one cell of the weekly matrix.
type CellKey struct {
	LocationID uuid.UUID `json:"location_id"`
	DayOfWeek  int       `json:"day_of_week"`
}

func (k CellKey) String() string {
	return fmt.Sprintf("%s/%d", k.LocationID, k.DayOfWeek)
}

// TimeRange is a bare start/end pair, the validator's input.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
