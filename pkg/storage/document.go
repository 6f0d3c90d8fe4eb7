package storage

import (
	"context"

	"qcscargo/pkg/domain"
)

// DocumentStorage persists metadata of documents kept in object storage.
type DocumentStorage interface {
	CreateDocument(ctx context.Context, doc domain.Document) (*domain.Document, error)
	DocumentByID(ctx context.Context, ID domain.DocumentID) (*domain.Document, error)
	// CustomerDocuments lists the documents of a customer, newest first.
	CustomerDocuments(ctx context.Context, customerID domain.CustomerID) ([]domain.Document, error)
	// DeleteDocument removes the metadata row and returns it, or nil when it
	// does not exist.
	DeleteDocument(ctx context.Context, ID domain.DocumentID) (*domain.Document, error)
}
