package document

import (
	"context"

	"qcscargo/pkg/domain"
)

// Service stores customer documents such as invoices and customs forms.
//
//go:generate mockgen -package mockdocument -source=interface.go -destination=mock/mockdocument.go *
type Service interface {
	Upload(ctx context.Context, principal domain.Principal, req UploadRequest) (*domain.Document, error)
	// List returns the documents of the caller. Staff may list the documents
	// of any customer.
	List(ctx context.Context, principal domain.Principal, customerID *domain.CustomerID) ([]domain.Document, error)
	DownloadURL(ctx context.Context, principal domain.Principal, ID domain.DocumentID) (string, error)
	Delete(ctx context.Context, principal domain.Principal, ID domain.DocumentID) error
}
