package entity

import (
	"delivery-availability/core/entity"

	"github.com/google/uuid"
)

// FrequencyFlag marks a location/weekday pair as part of the regular
// delivery cadence. Presence with Enabled=true is the only state that
// counts; a missing row and a disabled row mean the same thing.
type FrequencyFlag struct {
	LocationID uuid.UUID `db:"location_id" json:"location_id"`
	DayOfWeek  int       `db:"day_of_week" json:"day_of_week"`
	Enabled    bool      `db:"enabled" json:"enabled"`

	entity.BaseEntity
}
