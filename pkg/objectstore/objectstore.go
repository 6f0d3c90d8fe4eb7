// Package objectstore stores uploaded files in an S3 compatible bucket.
package objectstore

import (
	"context"
	"io"
	"time"
)

// Object describes an object to put into the store.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store is the object storage used for customer documents.
//
//go:generate mockgen -package mockobjectstore -source=objectstore.go -destination=mock/mockobjectstore.go *
type Store interface {
	Put(ctx context.Context, obj Object) error
	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL downloading key as an attachment named
	// fileName, valid for ttl.
	PresignGet(ctx context.Context, key, fileName string, ttl time.Duration) (string, error)
}
