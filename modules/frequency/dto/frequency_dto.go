package dto

import "delivery-availability/modules/frequency/entity"

// ToggleFlagRequest identifies the cell whose flag should flip.
type ToggleFlagRequest struct {
	LocationID string `json:"location_id"`
	DayOfWeek  int    `json:"day_of_week"`
}

// FlagResponse is one delivery-frequency flag.
type FlagResponse struct {
	LocationID string `json:"location_id"`
	DayOfWeek  int    `json:"day_of_week"`
	Enabled    bool   `json:"enabled"`
}

// ToggleResponse reports the flag state after a toggle.
type ToggleResponse struct {
	LocationID string `json:"location_id"`
	DayOfWeek  int    `json:"day_of_week"`
	Enabled    bool   `json:"enabled"`
}

func ToFlagResponse(f *entity.FrequencyFlag) *FlagResponse {
	return &FlagResponse{
		LocationID: f.LocationID.String(),
		DayOfWeek:  f.DayOfWeek,
		Enabled:    f.Enabled,
	}
}

func ToFlagResponses(flags []entity.FrequencyFlag) []FlagResponse {
	out := make([]FlagResponse, 0, len(flags))
	for i := range flags {
		out = append(out, *ToFlagResponse(&flags[i]))
	}
	return out
}
