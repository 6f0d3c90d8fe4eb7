package v1handler

import (
	"context"
	"net/http"

	"qcscargo/internal/blog"
	"qcscargo/pkg/domain"

	"github.com/go-chi/chi/v5"
)

// PostRequest is the body of the post editor endpoints. Empty fields are
// filled from the markdown front matter.
type PostRequest struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	MetaDescription string   `json:"metaDescription"`
	FocusKeyword    string   `json:"focusKeyword"`
	Tags            []string `json:"tags"`
	CoverImageURL   string   `json:"coverImageUrl"`
	Markdown        string   `json:"markdown"`
}

func (p PostRequest) toService() blog.PostRequest {
	return blog.PostRequest{
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		MetaDescription: p.MetaDescription,
		FocusKeyword:    p.FocusKeyword,
		Tags:            p.Tags,
		CoverImageURL:   p.CoverImageURL,
		Markdown:        p.Markdown,
	}
}

func (h Handler) listPosts(w http.ResponseWriter, r *http.Request, includeDrafts bool) {
	limit, err := queryLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	posts, next, err := h.deps.Blog.List(r.Context(), blog.ListFilter{
		Status: domain.PostStatus(r.URL.Query().Get("status")),
		Tag:    r.URL.Query().Get("tag"),
		Cursor: r.URL.Query().Get("cursor"),
		Limit:  limit,
	}, includeDrafts)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(posts, next))
}

// ListPublishedPosts pages through published posts, newest first.
func (h Handler) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, false)
}

// GetPublishedPost returns a published post by slug.
func (h Handler) GetPublishedPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.deps.Blog.GetBySlug(r.Context(), chi.URLParam(r, "slug"), false)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, post)
}

// ListPosts pages through all posts, drafts included.
func (h Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, true)
}

// GetPost returns any post by ID.
func (h Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	h.postByID(w, r, h.deps.Blog.Get)
}

// PublishPost makes a draft visible on the site.
func (h Handler) PublishPost(w http.ResponseWriter, r *http.Request) {
	h.postByID(w, r, h.deps.Blog.Publish)
}

// UnpublishPost takes a post back to draft.
func (h Handler) UnpublishPost(w http.ResponseWriter, r *http.Request) {
	h.postByID(w, r, h.deps.Blog.Unpublish)
}

// CreatePost saves a new draft authored by the caller.
func (h Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	post, err := h.deps.Blog.Create(r.Context(), mustPrincipal(r.Context()), req.toService())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusCreated, post)
}

// UpdatePost replaces the content of a post.
func (h Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PostID](r, "postID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req PostRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	post, err := h.deps.Blog.Update(r.Context(), id, req.toService())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, post)
}

// DeletePost removes a post.
func (h Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PostID](r, "postID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Blog.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AnalyzePost scores a post without saving it.
func (h Handler) AnalyzePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	report, err := h.deps.Blog.Analyze(r.Context(), req.toService())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, report)
}

func (h Handler) postByID(w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, ID domain.PostID) (*domain.Post, error)) {
	id, err := pathID[domain.PostID](r, "postID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	post, err := op(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, post)
}
