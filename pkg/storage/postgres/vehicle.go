package postgres

import (
	"context"
	"fmt"

	"qcscargo/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	vehiclesTable = "vehicles"
)

func (p *PgSQL) CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	var row PgVehicle
	if err := row.FromDomain(vehicle); err != nil {
		return nil, err
	}

	var result PgVehicle
	if _, err := p.Builder.Insert(vehiclesTable).
		Rows(row).
		Returning(&PgVehicle{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not store vehicle into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	var row PgVehicle
	if err := row.FromDomain(vehicle); err != nil {
		return nil, err
	}

	var result PgVehicle
	found, err := p.Builder.Update(vehiclesTable).
		Set(goqu.Record{
			"name":          row.Name,
			"capacity_kg":   row.CapacityKg,
			"capacity_m3":   row.CapacityM3,
			"service_areas": row.ServiceAreas,
			"active":        row.Active,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgVehicle{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, wrapErr(err, "could not update vehicle in pg")
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain()
}

func (p *PgSQL) Vehicles(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error) {
	ds := p.Builder.From(vehiclesTable).Order(goqu.I("name").Asc())
	if activeOnly {
		ds = ds.Where(goqu.I("active").IsTrue())
	}

	var rows []PgVehicle
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch vehicles from pg: %w", err)
	}

	return toDomain[domain.Vehicle](rows)
}
