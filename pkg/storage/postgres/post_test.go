package postgres_test

import (
	"context"
	"testing"
	"time"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Posts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	author := domain.UserID(uuid.New())
	post, err := pgSQL.CreatePost(ctx, domain.Post{
		AuthorID: author,
		Slug:     "shipping-to-jamaica",
		Title:    "Shipping to Jamaica",
		Tags:     []string{"jamaica", "air"},
		Markdown: "# Hello",
		HTML:     "<h1>Hello</h1>",
		Status:   domain.PostStatusDraft,
	})
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	_, err = pgSQL.CreatePost(ctx, domain.Post{
		AuthorID: author,
		Slug:     "shipping-to-jamaica",
		Title:    "Duplicate",
		Markdown: "x",
		HTML:     "x",
		Status:   domain.PostStatusDraft,
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	t.Run("publish", func(t *testing.T) {
		now := time.Now().UTC()
		post.Status = domain.PostStatusPublished
		post.PublishedAt = &now
		post.SEOScore = 80

		updated, err := pgSQL.UpdatePost(ctx, *post)
		require.NoError(t, err)
		require.Equal(t, domain.PostStatusPublished, updated.Status)
		require.NotNil(t, updated.PublishedAt)
		require.Equal(t, 80, updated.SEOScore)
	})

	t.Run("list by status and tag", func(t *testing.T) {
		page, err := pgSQL.Posts(ctx, storage.PostFilter{Status: domain.PostStatusPublished, Tag: "air", Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.ElementsMatch(t, []string{"jamaica", "air"}, page.Items[0].Tags)

		page, err = pgSQL.Posts(ctx, storage.PostFilter{Tag: "ocean", Limit: 10})
		require.NoError(t, err)
		require.Empty(t, page.Items)
	})

	t.Run("by slug and delete", func(t *testing.T) {
		got, err := pgSQL.PostBySlug(ctx, "shipping-to-jamaica")
		require.NoError(t, err)
		require.Equal(t, post.ID, got.ID)

		_, err = pgSQL.DeletePost(ctx, post.ID)
		require.NoError(t, err)

		gone, err := pgSQL.PostByID(ctx, post.ID)
		require.NoError(t, err)
		require.Nil(t, gone)
	})
}
