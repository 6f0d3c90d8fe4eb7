package storage

import (
	"context"

	"qcscargo/pkg/domain"
)

// VehicleStorage persists the pickup fleet.
type VehicleStorage interface {
	CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	// UpdateVehicle replaces the mutable fields of the vehicle with the same ID
	// and returns the updated row, or nil when it does not exist.
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	// Vehicles lists the fleet ordered by name.
	Vehicles(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error)
}
