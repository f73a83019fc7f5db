package dto

import (
	"time"

	"delivery-availability/modules/schedule/entity"
)

// ===================== Request DTOs =====================

// CreateSlotRequest adds one recurring window to a cell.
type CreateSlotRequest struct {
	LocationID string                 `json:"location_id" validate:"required"`
	DayOfWeek  int                    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime  string                 `json:"start_time" validate:"required"` // "HH:MM"
	EndTime    string                 `json:"end_time" validate:"required"`   // "HH:MM"
	Status     string                 `json:"status" validate:"required"`     // available | unavailable
	Metadata   map[string]interface{} `json:"metadata"`
}

// CellKeyDTO identifies one cell of the weekly matrix.
type CellKeyDTO struct {
	LocationID string `json:"location_id" validate:"required"`
	DayOfWeek  int    `json:"day_of_week" validate:"min=0,max=6"`
}

// ReplicateRequest copies (or clears) the source cell onto the target cell.
type ReplicateRequest struct {
	Source CellKeyDTO `json:"source" validate:"required"`
	Target CellKeyDTO `json:"target" validate:"required"`
}

// ===================== Response DTOs =====================

// SlotResponse is one recurring window.
type SlotResponse struct {
	ID         string                 `json:"id"`
	LocationID string                 `json:"location_id"`
	DayOfWeek  int                    `json:"day_of_week"`
	StartTime  string                 `json:"start_time"`
	EndTime    string                 `json:"end_time"`
	Status     string                 `json:"status"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// CellResponse is the full slot set of one cell.
type CellResponse struct {
	LocationID string         `json:"location_id"`
	DayOfWeek  int            `json:"day_of_week"`
	Slots      []SlotResponse `json:"slots"`
}

// ===================== Mapper Functions =====================

func ToSlotResponse(s *entity.WeeklySlot) *SlotResponse {
	return &SlotResponse{
		ID:         s.ID.String(),
		LocationID: s.LocationID.String(),
		DayOfWeek:  s.DayOfWeek,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Status:     s.Status,
		Metadata:   s.Metadata,
		CreatedAt:  s.CreatedAt,
	}
}

func ToCellResponse(locationID string, dayOfWeek int, slots []entity.WeeklySlot) *CellResponse {
	resp := &CellResponse{
		LocationID: locationID,
		DayOfWeek:  dayOfWeek,
		Slots:      make([]SlotResponse, 0, len(slots)),
	}
	for i := range slots {
		resp.Slots = append(resp.Slots, *ToSlotResponse(&slots[i]))
	}
	return resp
}
