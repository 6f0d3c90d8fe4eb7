package postgres

import (
	"context"
	"fmt"
	"time"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	customersTable = "customers"
)

func (p *PgSQL) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	var row PgCustomer
	row.FromDomain(customer)

	var result PgCustomer
	if _, err := p.Builder.Insert(customersTable).
		Rows(row).
		Returning(&PgCustomer{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not store customer into pg")
	}

	return result.ToDomain()
}

// UpdateCustomer applies the non-nil fields of updates and bumps updated_at.
func (p *PgSQL) UpdateCustomer(ctx context.Context,
	id domain.CustomerID,
	updates storage.CustomerUpdates) (*domain.Customer, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Phone != nil {
		rec["phone"] = nullString(*updates.Phone)
	}
	if updates.PreferredChannel != nil {
		rec["preferred_channel"] = string(*updates.PreferredChannel)
	}
	if updates.Destination != nil {
		rec["destination"] = nullString(*updates.Destination)
	}

	var row PgCustomer
	found, err := p.Builder.Update(customersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCustomer{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not update customer in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) customerBy(ctx context.Context, where goqu.Expression) (*domain.Customer, error) {
	var row PgCustomer
	found, err := p.Builder.From(customersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch customer: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) CustomerByID(ctx context.Context, id domain.CustomerID) (*domain.Customer, error) {
	return p.customerBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) CustomerByUserID(ctx context.Context, userID domain.UserID) (*domain.Customer, error) {
	return p.customerBy(ctx, goqu.I("user_id").Eq(uuid.UUID(userID)))
}

func (p *PgSQL) CustomerByMailbox(ctx context.Context, mailbox string) (*domain.Customer, error) {
	return p.customerBy(ctx, goqu.I("mailbox_number").Eq(mailbox))
}

// Customers returns customers ordered by created_at DESC, id DESC.
func (p *PgSQL) Customers(ctx context.Context, cursor time.Time, limit uint) (storage.Page[domain.Customer], error) {
	ds := p.Builder.From(customersTable)
	if !cursor.IsZero() {
		ds = ds.Where(goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgCustomer
	if err := ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Customer]{}, fmt.Errorf("could not fetch customers from pg: %w", err)
	}

	return paginate[domain.Customer](rows, limit)
}
