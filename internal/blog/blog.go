// Package blog is the CMS behind the marketing blog. Posts are written in
// markdown, rendered to sanitised HTML and scored against SEO rules on save.
package blog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"qcscargo/internal/config"
	"qcscargo/internal/customer"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"

	"go.uber.org/zap"
)

const (
	maxTitleChars    = 200
	maxMarkdownBytes = 200_000
	maxTags          = 10
	maxExcerptChars  = 200
	maxSlugAttempts  = 20
)

// Options configure the blog.
type Options struct {
	// SiteHost is the host of the public site.
	SiteHost string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	var host string
	if u, err := url.Parse(cfg.Blog.SiteURL); err == nil {
		host = u.Hostname()
	}

	return Options{SiteHost: host}
}

// PostRequest holds the editable fields of a post. Empty fields are filled
// from the front matter of the markdown.
type PostRequest struct {
	Title           string
	Slug            string
	Excerpt         string
	MetaDescription string
	FocusKeyword    string
	Tags            []string
	CoverImageURL   string
	Markdown        string
}

// ListFilter narrows a post listing.
type ListFilter struct {
	Status domain.PostStatus
	Tag    string
	Cursor string
	Limit  uint
}

type service struct {
	options  Options
	storage  storage.Storage
	renderer *Renderer
}

func metaString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
	}

	return ""
}

func metaStrings(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}

		return out
	case string:
		return strings.Split(v, ",")
	default:
		return nil
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}

	return out
}

func excerpt(paragraph string) string {
	if len([]rune(paragraph)) <= maxExcerptChars {
		return paragraph
	}
	cut := string([]rune(paragraph)[:maxExcerptChars])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " ,.;:") + "…"
}

// draft is a validated post request with its rendered content.
type draft struct {
	req     PostRequest
	content *Content
}

func (s service) prepare(req PostRequest) (*draft, error) {
	if len(req.Markdown) > maxMarkdownBytes {
		return nil, serrors.With(serrors.ErrPayloadTooLarge, "post markdown must be at most %d bytes", maxMarkdownBytes)
	}
	if strings.TrimSpace(req.Markdown) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "post content is required")
	}
	content, err := s.renderer.Render([]byte(req.Markdown))
	if err != nil {
		return nil, err
	}

	fill := func(field *string, keys ...string) {
		*field = strings.TrimSpace(*field)
		if *field == "" {
			*field = metaString(content.Meta, keys...)
		}
	}
	fill(&req.Title, "title")
	fill(&req.Slug, "slug")
	fill(&req.Excerpt, "excerpt", "summary")
	fill(&req.MetaDescription, "description", "metaDescription")
	fill(&req.FocusKeyword, "keyword", "focusKeyword")
	fill(&req.CoverImageURL, "cover", "coverImage")
	if len(req.Tags) == 0 {
		req.Tags = metaStrings(content.Meta, "tags")
	}

	if req.Title == "" || len([]rune(req.Title)) > maxTitleChars {
		return nil, serrors.With(serrors.ErrBadRequest, "title must be between 1 and %d characters", maxTitleChars)
	}
	req.Tags = normalizeTags(req.Tags)
	if len(req.Tags) > maxTags {
		return nil, serrors.With(serrors.ErrBadRequest, "a post can have at most %d tags", maxTags)
	}
	if req.CoverImageURL != "" {
		u, err := url.Parse(req.CoverImageURL)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "cover image must be an absolute http(s) URL")
		}
	}
	if req.Slug != "" {
		slug := Slugify(req.Slug)
		if slug == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid slug %q", req.Slug)
		}
		req.Slug = slug
	}
	if req.Excerpt == "" {
		req.Excerpt = excerpt(content.FirstParagraph)
	}

	return &draft{req: req, content: content}, nil
}

func (s service) analyze(d *draft, slug string) Report {
	return Analyze(Input{
		Title:           d.req.Title,
		MetaDescription: d.req.MetaDescription,
		FocusKeyword:    d.req.FocusKeyword,
		Slug:            slug,
		Content:         d.content,
		SiteHost:        s.options.SiteHost,
	})
}

func (d *draft) apply(post *domain.Post, report Report) {
	post.Title = d.req.Title
	post.Excerpt = d.req.Excerpt
	post.MetaDescription = d.req.MetaDescription
	post.FocusKeyword = d.req.FocusKeyword
	post.Tags = d.req.Tags
	post.CoverImageURL = d.req.CoverImageURL
	post.Markdown = d.req.Markdown
	post.HTML = d.content.HTML
	post.SEOScore = report.Score
}

// Create saves a new draft. When the slug derived from the title is taken a
// numeric suffix is appended.
func (s service) Create(ctx context.Context, author domain.Principal, req PostRequest) (*domain.Post, error) {
	d, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	base := d.req.Slug
	explicit := base != ""
	if !explicit {
		base = Slugify(d.req.Title)
	}
	if base == "" {
		base = "post"
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug := withSuffix(base, attempt)
		post := domain.Post{AuthorID: author.UserID, Slug: slug, Status: domain.PostStatusDraft}
		d.apply(&post, s.analyze(d, slug))

		created, err := s.storage.CreatePost(ctx, post)
		switch {
		case errors.Is(err, storage.ErrDuplicate) && !explicit:
			continue
		case errors.Is(err, storage.ErrDuplicate):
			return nil, serrors.Wrap(serrors.ErrConflict, err, "slug %q is taken", slug)
		case err != nil:
			return nil, fmt.Errorf("could not create post: %w", err)
		}

		logger.Info(ctx, "post created",
			zap.String("postID", created.ID.String()),
			zap.String("slug", created.Slug),
			zap.Int("seoScore", created.SEOScore))

		return created, nil
	}

	return nil, serrors.With(serrors.ErrConflict, "could not find a free slug for %q", base)
}

// Update replaces the content of a post and rescores it.
func (s service) Update(ctx context.Context, ID domain.PostID, req PostRequest) (*domain.Post, error) {
	post, err := s.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	d, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	if d.req.Slug != "" {
		post.Slug = d.req.Slug
	}
	d.apply(post, s.analyze(d, post.Slug))

	return s.save(ctx, *post)
}

func (s service) save(ctx context.Context, post domain.Post) (*domain.Post, error) {
	updated, err := s.storage.UpdatePost(ctx, post)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "slug %q is taken", post.Slug)
	}
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "post not found")
	}

	return updated, nil
}

// Publish makes a draft public.
func (s service) Publish(ctx context.Context, ID domain.PostID) (*domain.Post, error) {
	post, err := s.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	if post.Status == domain.PostStatusPublished {
		return nil, serrors.With(serrors.ErrConflict, "post is already published")
	}
	post.Status = domain.PostStatusPublished
	if post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	return s.save(ctx, *post)
}

// Unpublish turns a published post back into a draft. The first publication
// date is kept.
func (s service) Unpublish(ctx context.Context, ID domain.PostID) (*domain.Post, error) {
	post, err := s.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	if post.Status != domain.PostStatusPublished {
		return nil, serrors.With(serrors.ErrConflict, "post is not published")
	}
	post.Status = domain.PostStatusDraft

	return s.save(ctx, *post)
}

// Delete removes a post.
func (s service) Delete(ctx context.Context, ID domain.PostID) error {
	post, err := s.storage.DeletePost(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}
	if post == nil {
		return serrors.With(serrors.ErrNotFound, "post not found")
	}
	logger.Info(ctx, "post deleted", zap.String("postID", ID.String()), zap.String("slug", post.Slug))

	return nil
}

// Get returns a post by id, drafts included.
func (s service) Get(ctx context.Context, ID domain.PostID) (*domain.Post, error) {
	post, err := s.storage.PostByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}
	if post == nil {
		return nil, serrors.With(serrors.ErrNotFound, "post not found")
	}

	return post, nil
}

// GetBySlug returns a post by slug.
func (s service) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.Post, error) {
	post, err := s.storage.PostBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}
	if post == nil || (!includeDrafts && post.Status != domain.PostStatusPublished) {
		return nil, serrors.With(serrors.ErrNotFound, "post not found")
	}

	return post, nil
}

// List lists posts newest first. Without includeDrafts only published posts
// are listed whatever the status filter.
func (s service) List(ctx context.Context, filter ListFilter, includeDrafts bool) ([]domain.Post, string, error) {
	cursor, err := customer.ParseCursor(filter.Cursor)
	if err != nil {
		return nil, "", err //nolint: wrapcheck
	}
	status := filter.Status
	if !includeDrafts {
		status = domain.PostStatusPublished
	}
	if status != "" && status != domain.PostStatusDraft && status != domain.PostStatusPublished {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	page, err := s.storage.Posts(ctx, storage.PostFilter{
		Status: status,
		Tag:    strings.ToLower(strings.TrimSpace(filter.Tag)),
		Cursor: cursor,
		Limit:  customer.ClampLimit(filter.Limit),
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not list posts: %w", err)
	}

	return page.Items, customer.FormatCursor(page.NextCursor), nil
}

// Analyze scores a post without saving it.
func (s service) Analyze(_ context.Context, req PostRequest) (*Report, error) {
	d, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	slug := d.req.Slug
	if slug == "" {
		slug = Slugify(d.req.Title)
	}
	report := s.analyze(d, slug)

	return &report, nil
}

// New creates a blog Service.
func New(storage storage.Storage, options Options) Service {
	return &service{options: options, storage: storage, renderer: NewRenderer()}
}
