package storage

import (
	"context"
	"time"

	"qcscargo/pkg/domain"
)

// PostFilter narrows a post listing. Zero fields do not filter.
type PostFilter struct {
	Status domain.PostStatus
	Tag    string
	Cursor time.Time
	Limit  uint
}

// PostStorage persists blog posts.
type PostStorage interface {
	// CreatePost inserts a post. A taken slug fails with ErrDuplicate.
	CreatePost(ctx context.Context, post domain.Post) (*domain.Post, error)
	// UpdatePost replaces the mutable fields of the post with the same ID and
	// returns the updated row, or nil when it does not exist.
	UpdatePost(ctx context.Context, post domain.Post) (*domain.Post, error)
	PostByID(ctx context.Context, ID domain.PostID) (*domain.Post, error)
	PostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	// Posts lists posts created before filter.Cursor, newest first.
	Posts(ctx context.Context, filter PostFilter) (Page[domain.Post], error)
	DeletePost(ctx context.Context, ID domain.PostID) (*domain.Post, error)
}
