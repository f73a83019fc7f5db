package dto

import (
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/modules/exception/entity"
)

// ===================== Request DTOs =====================

// CreateExceptionRequest adds a date-specific override.
type CreateExceptionRequest struct {
	LocationID    string  `json:"location_id" validate:"required"`
	ExceptionDate string  `json:"exception_date" validate:"required"` // YYYY-MM-DD
	Type          string  `json:"type" validate:"required"`           // blocked | open_extra | special_hours
	StartTime     *string `json:"start_time"`                         // "HH:MM", absent when blocked
	EndTime       *string `json:"end_time"`
	Note          string  `json:"note"`
	Source        string  `json:"source"` // defaults to user
}

// UpdateExceptionRequest changes an existing override; the date is immutable.
type UpdateExceptionRequest struct {
	Type      string  `json:"type" validate:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Note      string  `json:"note"`
	Source    string  `json:"source"`
}

// ===================== Response DTOs =====================

type ExceptionResponse struct {
	ID            string    `json:"id"`
	LocationID    string    `json:"location_id"`
	ExceptionDate string    `json:"exception_date"`
	Type          string    `json:"type"`
	StartTime     *string   `json:"start_time,omitempty"`
	EndTime       *string   `json:"end_time,omitempty"`
	Note          string    `json:"note,omitempty"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

// ===================== Mapper Functions =====================

func ToExceptionResponse(e *entity.Exception) *ExceptionResponse {
	return &ExceptionResponse{
		ID:            e.ID.String(),
		LocationID:    e.LocationID.String(),
		ExceptionDate: e.ExceptionDate.Format(constants.DateLayout),
		Type:          e.Type,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Note:          e.Note,
		Source:        e.Source,
		CreatedAt:     e.CreatedAt,
	}
}

func ToExceptionResponses(excs []entity.Exception) []ExceptionResponse {
	result := make([]ExceptionResponse, 0, len(excs))
	for i := range excs {
		result = append(result, *ToExceptionResponse(&excs[i]))
	}
	return result
}
