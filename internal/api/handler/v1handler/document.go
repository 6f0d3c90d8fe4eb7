package v1handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"qcscargo/internal/document"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/serrors"

	"github.com/dustin/go-humanize"
)

// multipartOverhead is the room left for form fields next to the file.
const multipartOverhead = 1 << 20

// DownloadResponse carries a presigned download URL.
type DownloadResponse struct {
	URL string `json:"url"`
}

// UploadDocument stores a file sent as multipart/form-data with the fields
// kind, packageId (optional) and file.
func (h Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, r, serrors.With(serrors.ErrPayloadTooLarge,
				"file exceeds the %s limit", humanize.IBytes(uint64(h.opts.MaxUploadBytes)))) //nolint: gosec

			return
		}
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form"))

		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "file is required"))

		return
	}
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read file"))

		return
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	packageID, err := optionalID[domain.PackageID](r.FormValue("packageId"), "packageId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	doc, err := h.deps.Documents.Upload(r.Context(), mustPrincipal(r.Context()), document.UploadRequest{
		Kind:      domain.DocumentKind(r.FormValue("kind")),
		FileName:  header.Filename,
		PackageID: packageID,
		Body:      file,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusCreated, doc)
}

// ListDocuments lists the documents of the caller.
func (h Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.deps.Documents.List(r.Context(), mustPrincipal(r.Context()), nil)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(docs, ""))
}

// ListCustomerDocuments lists the documents of a customer for staff.
func (h Handler) ListCustomerDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.CustomerID](r, "customerID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	docs, err := h.deps.Documents.List(r.Context(), mustPrincipal(r.Context()), &id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(docs, ""))
}

// DownloadDocument returns a short-lived download URL. With ?redirect=true
// the client is redirected to it instead.
func (h Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.DocumentID](r, "documentID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	url, err := h.deps.Documents.DownloadURL(r.Context(), mustPrincipal(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if r.URL.Query().Get("redirect") == "true" {
		http.Redirect(w, r, url, http.StatusFound)

		return
	}
	h.writeJSON(w, r, http.StatusOK, DownloadResponse{URL: url})
}

// DeleteDocument removes a document and its file.
func (h Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.DocumentID](r, "documentID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Documents.Delete(r.Context(), mustPrincipal(r.Context()), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
