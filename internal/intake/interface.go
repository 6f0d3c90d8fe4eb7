package intake

import (
	"context"

	"qcscargo/pkg/domain"
)

// Service records packages arriving at the warehouse and tracks them until
// they are delivered.
//
//go:generate mockgen -package mockintake -source=interface.go -destination=mock/mockintake.go *
type Service interface {
	Receive(ctx context.Context, staff domain.Principal, req ReceiveRequest) (*domain.Package, error)
	UpdateStatus(ctx context.Context, ID domain.PackageID, req StatusRequest) (*domain.Package, error)
	Get(ctx context.Context, principal domain.Principal, ID domain.PackageID) (*domain.Package, error)
	List(ctx context.Context, principal domain.Principal, filter ListFilter) ([]domain.Package, string, error)
}
