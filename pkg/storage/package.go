package storage

import (
	"context"
	"time"

	"qcscargo/pkg/domain"
)

// PackageFilter narrows a package listing. Zero fields do not filter.
type PackageFilter struct {
	CustomerID *domain.CustomerID
	Status     domain.PackageStatus
	Cursor     time.Time
	Limit      uint
}

// PackageStorage persists packages received at the warehouse.
type PackageStorage interface {
	// CreatePackage inserts a package. A tracking number can only be received
	// once; duplicates fail with ErrDuplicate.
	CreatePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error)
	PackageByID(ctx context.Context, ID domain.PackageID) (*domain.Package, error)
	PackageByTracking(ctx context.Context, trackingNumber string) (*domain.Package, error)
	// UpdatePackageStatus moves a package from one status to another and
	// replaces its notes when notes is not nil. It returns nil when the package
	// does not exist or is not in status from.
	UpdatePackageStatus(ctx context.Context,
		ID domain.PackageID,
		from, to domain.PackageStatus,
		notes *string) (*domain.Package, error)
	// Packages lists packages received before filter.Cursor, newest first.
	Packages(ctx context.Context, filter PackageFilter) (Page[domain.Package], error)
}
