package postgres

import (
	"context"
	"fmt"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	postsTable = "posts"
)

func (p *PgSQL) CreatePost(ctx context.Context, post domain.Post) (*domain.Post, error) {
	var row PgPost
	if err := row.FromDomain(post); err != nil {
		return nil, err
	}

	var result PgPost
	if _, err := p.Builder.Insert(postsTable).
		Rows(row).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr(err, "could not store post into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) UpdatePost(ctx context.Context, post domain.Post) (*domain.Post, error) {
	var row PgPost
	if err := row.FromDomain(post); err != nil {
		return nil, err
	}

	var result PgPost
	found, err := p.Builder.Update(postsTable).
		Set(goqu.Record{
			"slug":             row.Slug,
			"title":            row.Title,
			"excerpt":          row.Excerpt,
			"meta_description": row.MetaDescription,
			"focus_keyword":    row.FocusKeyword,
			"tags":             row.Tags,
			"cover_image_url":  row.CoverImageURL,
			"markdown":         row.Markdown,
			"html":             row.HTML,
			"seo_score":        row.SEOScore,
			"status":           row.Status,
			"published_at":     row.PublishedAt,
			"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, wrapErr(err, "could not update post in pg")
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain()
}

func (p *PgSQL) postBy(ctx context.Context, where goqu.Expression) (*domain.Post, error) {
	var row PgPost
	found, err := p.Builder.From(postsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch post: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PostByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	return p.postBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) PostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return p.postBy(ctx, goqu.I("slug").Eq(slug))
}

// Posts returns posts ordered by created_at DESC, id DESC.
func (p *PgSQL) Posts(ctx context.Context, filter storage.PostFilter) (storage.Page[domain.Post], error) {
	var w []goqu.Expression
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Tag != "" {
		tag, err := marshalJSON([]string{filter.Tag}, "tag filter")
		if err != nil {
			return storage.Page[domain.Post]{}, err
		}
		w = append(w, goqu.L("tags @> ?::jsonb", string(tag)))
	}
	if !filter.Cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.Cursor))
	}

	var rows []PgPost
	if err := p.Builder.From(postsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(filter.Limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Post]{}, fmt.Errorf("could not fetch posts from pg: %w", err)
	}

	return paginate[domain.Post](rows, filter.Limit)
}

func (p *PgSQL) DeletePost(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	var row PgPost
	found, err := p.Builder.Delete(postsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete post in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
