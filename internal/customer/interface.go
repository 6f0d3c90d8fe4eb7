package customer

import (
	"context"

	"qcscargo/pkg/domain"
)

//go:generate mockgen -package mockcustomer -source=interface.go -destination=mock/mockcustomer.go *
type Service interface {
	Register(ctx context.Context, principal domain.Principal, req RegisterRequest) (*domain.Customer, error)
	Me(ctx context.Context, principal domain.Principal) (*domain.Customer, error)
	UpdateMe(ctx context.Context, principal domain.Principal, req UpdateRequest) (*domain.Customer, error)
	List(ctx context.Context, cursor string, limit uint) ([]domain.Customer, string, error)
	Get(ctx context.Context, ID domain.CustomerID) (*domain.Customer, error)

	CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	Vehicles(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error)
}
