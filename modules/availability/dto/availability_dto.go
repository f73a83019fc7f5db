package dto

import "delivery-availability/modules/availability/entity"

// ResolutionResponse is the effective state of one cell, optionally
// pinned to a calendar date.
type ResolutionResponse struct {
	LocationID string            `json:"location_id"`
	DayOfWeek  int               `json:"day_of_week"`
	Date       *string           `json:"date,omitempty"`
	Resolution entity.Resolution `json:"resolution"`
}

// DayCell is one weekday's resolution inside a week view.
type DayCell struct {
	DayOfWeek  int               `json:"day_of_week"`
	Resolution entity.Resolution `json:"resolution"`
}

// WeekResponse is the full weekly view for one location.
type WeekResponse struct {
	LocationID string    `json:"location_id"`
	Days       []DayCell `json:"days"`
}

// MatrixResponse is the date-range view for one location, one
// resolution per calendar date.
type MatrixResponse struct {
	LocationID string                   `json:"location_id"`
	From       string                   `json:"from"`
	To         string                   `json:"to"`
	Days       []entity.DatedResolution `json:"days"`
}
