package entity

import (
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/core/entity"

	"github.com/google/uuid"
)

// Exception is a one-off override for a specific calendar date. It dominates
// the recurring schedule for that date. Start/End are nil exactly when the
// type is blocked.
type Exception struct {
	LocationID    uuid.UUID `db:"location_id" json:"location_id"`
	ExceptionDate time.Time `db:"exception_date" json:"exception_date"`
	Type          string    `db:"type" json:"type"` // blocked | open_extra | special_hours
	StartTime     *string   `db:"start_time" json:"start_time,omitempty"`
	EndTime       *string   `db:"end_time" json:"end_time,omitempty"`
	Note          string    `db:"note" json:"note"`
	Source        string    `db:"source" json:"source"` // user | system
	entity.BaseEntity
}

// IsBlocked reports whether the exception closes the whole date.
func (e *Exception) IsBlocked() bool {
	return e.Type == constants.ExceptionTypeBlocked
}
