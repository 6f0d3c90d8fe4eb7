package blog

import (
	"context"

	"qcscargo/pkg/domain"
)

// Service manages blog posts. Drafts are only visible to staff.
//
//go:generate mockgen -package mockblog -source=interface.go -destination=mock/mockblog.go *
type Service interface {
	Create(ctx context.Context, author domain.Principal, req PostRequest) (*domain.Post, error)
	Update(ctx context.Context, ID domain.PostID, req PostRequest) (*domain.Post, error)
	Publish(ctx context.Context, ID domain.PostID) (*domain.Post, error)
	Unpublish(ctx context.Context, ID domain.PostID) (*domain.Post, error)
	Delete(ctx context.Context, ID domain.PostID) error

	Get(ctx context.Context, ID domain.PostID) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.Post, error)
	List(ctx context.Context, filter ListFilter, includeDrafts bool) ([]domain.Post, string, error)

	// Analyze runs the SEO analysis on a post without saving it.
	Analyze(ctx context.Context, req PostRequest) (*Report, error)
}
