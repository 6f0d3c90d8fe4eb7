package domain

import (
	"time"

	"github.com/google/uuid"
)

// VehicleID uniquely identifies a pickup vehicle.
type VehicleID uuid.UUID

// String returns the canonical UUID representation.
func (id VehicleID) String() string { return uuid.UUID(id).String() }

// Vehicle is a pickup truck or van with a fixed payload capacity.
type Vehicle struct {
	ID   VehicleID `json:"id"`
	Name string    `json:"name"`

	CapacityKg float64 `json:"capacityKg"`
	CapacityM3 float64 `json:"capacityM3"`
	// ServiceAreas lists postal code prefixes the vehicle serves. An empty
	// list means the vehicle serves every area.
	ServiceAreas []string `json:"serviceAreas"`
	Active       bool     `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
}
