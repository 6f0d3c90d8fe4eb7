package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentID uniquely identifies an uploaded document.
type DocumentID uuid.UUID

// String returns the canonical UUID representation.
func (id DocumentID) String() string { return uuid.UUID(id).String() }

// DocumentKind classifies uploaded documents.
type DocumentKind string

const (
	DocumentKindInvoice DocumentKind = "INVOICE"
	DocumentKindID      DocumentKind = "ID"
	DocumentKindCustoms DocumentKind = "CUSTOMS"
	DocumentKindOther   DocumentKind = "OTHER"
)

// Valid reports whether k is a known document kind.
func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindInvoice, DocumentKindID, DocumentKindCustoms, DocumentKindOther:
		return true
	default:
		return false
	}
}

// Document is the metadata of a file stored in object storage.
type Document struct {
	ID         DocumentID   `json:"id"`
	CustomerID CustomerID   `json:"customerId"`
	PackageID  *PackageID   `json:"packageId,omitempty"`
	Kind       DocumentKind `json:"kind"`

	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	ObjectKey   string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
