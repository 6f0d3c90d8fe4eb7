package postgres

import (
	"context"
	"fmt"

	"qcscargo/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	documentsTable = "documents"
)

func (p *PgSQL) CreateDocument(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	var row PgDocument
	row.FromDomain(doc)

	var result PgDocument
	if _, err := p.Builder.Insert(documentsTable).
		Rows(row).
		Returning(&PgDocument{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not store document into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) DocumentByID(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) CustomerDocuments(ctx context.Context, customerID domain.CustomerID) ([]domain.Document, error) {
	var rows []PgDocument
	if err := p.Builder.From(documentsTable).
		Where(goqu.I("customer_id").Eq(uuid.UUID(customerID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch customer documents from pg: %w", err)
	}

	return toDomain[domain.Document](rows)
}

func (p *PgSQL) DeleteDocument(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.Delete(documentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgDocument{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete document in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
