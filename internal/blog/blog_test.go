package blog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"qcscargo/internal/blog"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"
	mockstorage "qcscargo/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var editor = domain.Principal{UserID: domain.UserID(uuid.New()), Role: domain.RoleStaff}

func newTestService(t *testing.T) (*mockstorage.MockStorage, blog.Service) {
	t.Helper()

	st := mockstorage.NewMockStorage(gomock.NewController(t))

	return st, blog.New(st, blog.Options{SiteHost: "www.qcs-cargo.com"})
}

func storedPost(status domain.PostStatus) *domain.Post {
	return &domain.Post{
		ID:       domain.PostID(uuid.New()),
		AuthorID: editor.UserID,
		Slug:     "air-freight-guide",
		Title:    guideTitle,
		Markdown: "Air freight basics.",
		Status:   status,
	}
}

func TestCreate_FromFrontMatter(t *testing.T) {
	ctx := context.Background()
	st, s := newTestService(t)

	st.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Post) (*domain.Post, error) {
			require.Equal(t, guideTitle, p.Title)
			require.Equal(t, "air-freight-to-jamaica-a-complete-shipping-guide", p.Slug)
			require.Equal(t, guideDescription, p.MetaDescription)
			require.Equal(t, "air freight", p.FocusKeyword)
			require.Equal(t, []string{"jamaica", "air"}, p.Tags)
			require.Equal(t, domain.PostStatusDraft, p.Status)
			require.Equal(t, editor.UserID, p.AuthorID)
			require.Equal(t, "Air freight is the fastest way to move parcels from Miami to the Caribbean.", p.Excerpt)
			require.Equal(t, 100, p.SEOScore)
			require.Contains(t, p.HTML, "<h2")
			p.ID = domain.PostID(uuid.New())

			return &p, nil
		})

	post, err := s.Create(ctx, editor, blog.PostRequest{Markdown: guideMarkdown()})
	require.NoError(t, err)
	require.Equal(t, 100, post.SEOScore)
}

func TestCreate_SlugTakenGetsSuffix(t *testing.T) {
	ctx := context.Background()
	st, s := newTestService(t)

	var slugs []string
	st.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, p domain.Post) (*domain.Post, error) {
			slugs = append(slugs, p.Slug)
			if len(slugs) < 3 {
				return nil, fmt.Errorf("posts_slug_key: %w", storage.ErrDuplicate)
			}

			return &p, nil
		})

	post, err := s.Create(ctx, editor, blog.PostRequest{Title: "Hurricane Season Shipping", Markdown: "Plan ahead."})
	require.NoError(t, err)
	require.Equal(t, []string{
		"hurricane-season-shipping", "hurricane-season-shipping-2", "hurricane-season-shipping-3",
	}, slugs)
	require.Equal(t, "hurricane-season-shipping-3", post.Slug)
}

func TestCreate_ExplicitSlugTaken(t *testing.T) {
	ctx := context.Background()
	st, s := newTestService(t)

	st.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("posts_slug_key: %w", storage.ErrDuplicate))

	_, err := s.Create(ctx, editor, blog.PostRequest{Title: "Rates", Slug: "Rates 2025", Markdown: "New rates."})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	_, s := newTestService(t)

	cases := map[string]blog.PostRequest{
		"no content":    {Title: "Title"},
		"no title":      {Markdown: "body"},
		"bad cover":     {Title: "Title", Markdown: "body", CoverImageURL: "javascript:alert(1)"},
		"bad slug":      {Title: "Title", Markdown: "body", Slug: "!!!"},
		"front matter":  {Title: "Title", Markdown: "---\ntags: [x\n---\nbody"},
		"too many tags": {Title: "Title", Markdown: "body", Tags: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Create(ctx, editor, req)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st, s := newTestService(t)

	post := storedPost(domain.PostStatusPublished)
	st.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Post) (*domain.Post, error) {
			require.Equal(t, post.ID, p.ID)
			require.Equal(t, "air-freight-guide", p.Slug)
			require.Equal(t, "Updated title", p.Title)
			require.Equal(t, domain.PostStatusPublished, p.Status)
			require.Contains(t, p.HTML, "<strong>new</strong>")

			return &p, nil
		})

	_, err := s.Update(ctx, post.ID, blog.PostRequest{Title: "Updated title", Markdown: "Some **new** text."})
	require.NoError(t, err)
}

func TestUpdate_Missing(t *testing.T) {
	ctx := context.Background()
	st, s := newTestService(t)

	st.EXPECT().PostByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.Update(ctx, domain.PostID(uuid.New()), blog.PostRequest{Title: "T", Markdown: "b"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPublishAndUnpublish(t *testing.T) {
	ctx := context.Background()

	t.Run("publish draft", func(t *testing.T) {
		st, s := newTestService(t)
		post := storedPost(domain.PostStatusDraft)
		st.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
		st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Post) (*domain.Post, error) {
				return &p, nil
			})

		got, err := s.Publish(ctx, post.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PostStatusPublished, got.Status)
		require.NotNil(t, got.PublishedAt)
		require.WithinDuration(t, time.Now(), *got.PublishedAt, time.Minute)
	})

	t.Run("republish keeps first publication date", func(t *testing.T) {
		st, s := newTestService(t)
		post := storedPost(domain.PostStatusDraft)
		first := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		post.PublishedAt = &first
		st.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
		st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Post) (*domain.Post, error) {
				return &p, nil
			})

		got, err := s.Publish(ctx, post.ID)
		require.NoError(t, err)
		require.Equal(t, first, *got.PublishedAt)
	})

	t.Run("publish published", func(t *testing.T) {
		st, s := newTestService(t)
		post := storedPost(domain.PostStatusPublished)
		st.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)

		_, err := s.Publish(ctx, post.ID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("unpublish", func(t *testing.T) {
		st, s := newTestService(t)
		post := storedPost(domain.PostStatusPublished)
		st.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
		st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Post) (*domain.Post, error) {
				return &p, nil
			})

		got, err := s.Unpublish(ctx, post.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PostStatusDraft, got.Status)
	})

	t.Run("unpublish draft", func(t *testing.T) {
		st, s := newTestService(t)
		post := storedPost(domain.PostStatusDraft)
		st.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)

		_, err := s.Unpublish(ctx, post.ID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestGetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("published", func(t *testing.T) {
		st, s := newTestService(t)
		post := storedPost(domain.PostStatusPublished)
		st.EXPECT().PostBySlug(gomock.Any(), "air-freight-guide").Return(post, nil)

		got, err := s.GetBySlug(ctx, " Air-Freight-Guide ", false)
		require.NoError(t, err)
		require.Equal(t, post, got)
	})

	t.Run("draft hidden from public", func(t *testing.T) {
		st, s := newTestService(t)
		st.EXPECT().PostBySlug(gomock.Any(), "air-freight-guide").Return(storedPost(domain.PostStatusDraft), nil)

		_, err := s.GetBySlug(ctx, "air-freight-guide", false)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("draft visible to staff", func(t *testing.T) {
		st, s := newTestService(t)
		st.EXPECT().PostBySlug(gomock.Any(), "air-freight-guide").Return(storedPost(domain.PostStatusDraft), nil)

		_, err := s.GetBySlug(ctx, "air-freight-guide", true)
		require.NoError(t, err)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("public only sees published posts", func(t *testing.T) {
		st, s := newTestService(t)
		st.EXPECT().Posts(gomock.Any(), storage.PostFilter{
			Status: domain.PostStatusPublished,
			Tag:    "jamaica",
			Limit:  20,
		}).Return(storage.Page[domain.Post]{Items: []domain.Post{*storedPost(domain.PostStatusPublished)}}, nil)

		posts, cursor, err := s.List(ctx, blog.ListFilter{Status: domain.PostStatusDraft, Tag: " Jamaica "}, false)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.Empty(t, cursor)
	})

	t.Run("staff filters drafts", func(t *testing.T) {
		st, s := newTestService(t)
		st.EXPECT().Posts(gomock.Any(), storage.PostFilter{Status: domain.PostStatusDraft, Limit: 5}).
			Return(storage.Page[domain.Post]{}, nil)

		_, _, err := s.List(ctx, blog.ListFilter{Status: domain.PostStatusDraft, Limit: 5}, true)
		require.NoError(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, s := newTestService(t)
		_, _, err := s.List(ctx, blog.ListFilter{Status: "ARCHIVED"}, true)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	st, s := newTestService(t)

	post := storedPost(domain.PostStatusDraft)
	st.EXPECT().DeletePost(gomock.Any(), post.ID).Return(post, nil)
	st.EXPECT().DeletePost(gomock.Any(), post.ID).Return(nil, nil)

	require.NoError(t, s.Delete(ctx, post.ID))
	require.ErrorIs(t, s.Delete(ctx, post.ID), serrors.ErrNotFound)
}

func TestServiceAnalyze(t *testing.T) {
	ctx := context.Background()
	_, s := newTestService(t)

	r, err := s.Analyze(ctx, blog.PostRequest{Markdown: guideMarkdown()})
	require.NoError(t, err)
	require.Equal(t, 100, r.Score)
}
