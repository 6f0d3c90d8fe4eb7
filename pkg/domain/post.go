package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostID uniquely identifies a blog post.
type PostID uuid.UUID

// String returns the canonical UUID representation.
func (id PostID) String() string { return uuid.UUID(id).String() }

// PostStatus is the publication state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// Post is a blog article managed from the admin console.
type Post struct {
	ID       PostID `json:"id"`
	AuthorID UserID `json:"authorId"`

	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	FocusKeyword    string   `json:"focusKeyword,omitempty"`
	Tags            []string `json:"tags"`
	CoverImageURL   string   `json:"coverImageUrl,omitempty"`

	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	SEOScore int    `json:"seoScore"`

	Status      PostStatus `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
