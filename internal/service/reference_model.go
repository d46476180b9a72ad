package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/location"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/material"
)

// MaterialUnits are the units a material can be measured in.
var MaterialUnits = []string{"kg", "tonne", "piece", "litre"}

// Location represents a location in the service layer.
type Location struct {
	ID        uuid.UUID
	Name      string
	Address   string
	CreatedAt time.Time
}

// LocationInput is the input for creating a location.
type LocationInput struct {
	Name    string `json:"name" validate:"required,max=120"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

// LocationPatch holds the location fields to change. Nil fields are left as they are.
type LocationPatch struct {
	Name    *string `json:"name,omitempty" validate:"omitnil,min=1,max=120"`
	Address *string `json:"address,omitempty" validate:"omitnil,max=500"`
}

// Material represents a material in the service layer.
type Material struct {
	ID        uuid.UUID
	Name      string
	Unit      string
	CreatedAt time.Time
}

// MaterialInput is the input for creating a material.
type MaterialInput struct {
	Name string `json:"name" validate:"required,max=120"`
	Unit string `json:"unit" validate:"required,oneof=kg tonne piece litre"`
}

// MaterialPatch holds the material fields to change. Nil fields are left as they are.
type MaterialPatch struct {
	Name *string `json:"name,omitempty" validate:"omitnil,min=1,max=120"`
	Unit *string `json:"unit,omitempty" validate:"omitnil,oneof=kg tonne piece litre"`
}

func locationFromStorage(l *location.Location) Location {
	return Location{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		CreatedAt: l.CreatedAt,
	}
}

func materialFromStorage(m *material.Material) Material {
	return Material{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt,
	}
}

func omitFromPtr(s *string) omit.Val[string] {
	if s == nil {
		return omit.Val[string]{}
	}
	return omit.From(*s)
}
