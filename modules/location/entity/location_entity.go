package entity

import (
	"delivery-availability/core/entity"
)

// Location is an addressable delivery or receiving site. The scheduling
// core references locations by id only; this record carries the naming
// and lifecycle data around that id.
type Location struct {
	Name    string `db:"name" json:"name"`
	Code    string `db:"code" json:"code"`
	Address string `db:"address" json:"address"`
	Active  bool   `db:"active" json:"active"`

	entity.BaseEntity
}
