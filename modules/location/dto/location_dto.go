package dto

import (
	"time"

	"delivery-availability/modules/location/entity"
)

// CreateLocationRequest creates a new site. The code is derived from the
// name when left empty.
type CreateLocationRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
}

// UpdateLocationRequest updates a site's details.
type UpdateLocationRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	Active  *bool  `json:"active"`
}

// LocationResponse is one site.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToLocationResponse(l *entity.Location) *LocationResponse {
	return &LocationResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		Code:      l.Code,
		Address:   l.Address,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func ToLocationResponses(locs []entity.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(locs))
	for i := range locs {
		out = append(out, *ToLocationResponse(&locs[i]))
	}
	return out
}
