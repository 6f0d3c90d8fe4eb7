package postgres

import (
	"context"
	"fmt"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	packagesTable = "packages"
)

func (p *PgSQL) CreatePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error) {
	var row PgPackage
	row.FromDomain(pkg)

	var result PgPackage
	if _, err := p.Builder.Insert(packagesTable).
		Rows(row).
		Returning(&PgPackage{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not store package into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) packageBy(ctx context.Context, where goqu.Expression) (*domain.Package, error) {
	var row PgPackage
	found, err := p.Builder.From(packagesTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch package: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PackageByID(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	return p.packageBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) PackageByTracking(ctx context.Context, trackingNumber string) (*domain.Package, error) {
	return p.packageBy(ctx, goqu.I("tracking_number").Eq(trackingNumber))
}

func (p *PgSQL) UpdatePackageStatus(ctx context.Context,
	id domain.PackageID,
	from, to domain.PackageStatus,
	notes *string) (*domain.Package, error) {
	rec := goqu.Record{
		"status":     string(to),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if notes != nil {
		rec["notes"] = nullString(*notes)
	}

	var row PgPackage
	found, err := p.Builder.Update(packagesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(from)),
		).
		Returning(&PgPackage{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update package status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Packages returns packages ordered by received_at DESC, id DESC.
func (p *PgSQL) Packages(ctx context.Context, filter storage.PackageFilter) (storage.Page[domain.Package], error) {
	var w []goqu.Expression
	if filter.CustomerID != nil {
		w = append(w, goqu.I("customer_id").Eq(uuid.UUID(*filter.CustomerID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if !filter.Cursor.IsZero() {
		w = append(w, goqu.I("received_at").Lt(filter.Cursor))
	}

	var rows []PgPackage
	if err := p.Builder.From(packagesTable).
		Where(w...).
		Order(goqu.I("received_at").Desc(), goqu.I("id").Desc()).
		Limit(filter.Limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Package]{}, fmt.Errorf("could not fetch packages from pg: %w", err)
	}

	return paginate[domain.Package](rows, filter.Limit)
}
