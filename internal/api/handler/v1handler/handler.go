// Package v1handler implements the /v1 HTTP API on top of the domain
// services. Handlers decode requests, call exactly one service operation and
// encode its result; every error goes through the shared error envelope.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"qcscargo/internal/analytics"
	"qcscargo/internal/blog"
	"qcscargo/internal/booking"
	"qcscargo/internal/customer"
	"qcscargo/internal/document"
	"qcscargo/internal/intake"
	"qcscargo/internal/quote"
	"qcscargo/pkg/controller"
	"qcscargo/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DefaultLimit is the page size used when a list request sets none.
const DefaultLimit = 20

// Deps are the services behind the API.
type Deps struct {
	Customers customer.Service
	Bookings  booking.Service
	Quotes    quote.Service
	Intake    intake.Service
	Documents document.Service
	Analytics analytics.Service
	Blog      blog.Service
}

// Options limits request bodies.
type Options struct {
	// MaxBodyBytes limits JSON bodies.
	MaxBodyBytes int64
	// MaxUploadBytes limits multipart uploads, on top of the file size limit
	// the document service enforces.
	MaxUploadBytes int64
}

// Handler serves the v1 API.
type Handler struct {
	deps Deps
	opts Options
}

// New constructs a Handler.
func New(deps Deps, opts Options) *Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}

	return &Handler{deps: deps, opts: opts}
}

// ErrorResponse is an error envelope and the status it is sent with.
type ErrorResponse struct {
	StatusCode int
	Response   controller.ErrorBody
}

// NewError converts err into the error response of the API.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	status, body := controller.NewError(ctx, err)

	return &ErrorResponse{StatusCode: status, Response: body}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	controller.WriteJSON(r.Context(), w, res.StatusCode, res.Response)
}

func (h Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	controller.WriteJSON(r.Context(), w, status, v)
}

// List is a page of items.
type List[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

func newList[T any](items []T, next string) List[T] {
	if items == nil {
		items = []T{}
	}
	l := List[T]{Items: items}
	if next != "" {
		l.NextCursor = &next
	}

	return l
}

// Routes mounts the v1 API. Public routes are served as is, customer routes
// require a bearer token and /admin routes require a staff token.
func (h Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()

	// anonymous or authenticated
	r.Group(func(r chi.Router) {
		r.Use(sec.OptionalAuth)

		r.Post("/quotes", h.CreateQuote)
		r.Get("/quotes/{quoteID}", h.GetQuote)
		r.Get("/quotes/{quoteID}/pdf", h.GetQuotePDF)
		r.Get("/rates", h.ListRates)

		r.Get("/blog/posts", h.ListPublishedPosts)
		r.Get("/blog/posts/{slug}", h.GetPublishedPost)
	})

	// customers
	r.Group(func(r chi.Router) {
		r.Use(sec.RequireAuth)

		r.Post("/customers", h.Register)
		r.Get("/me", h.Me)
		r.Patch("/me", h.UpdateMe)

		r.Get("/bookings/availability", h.Availability)
		r.Post("/bookings", h.CreateBooking)
		r.Get("/bookings", h.ListBookings)
		r.Get("/bookings/{bookingID}", h.GetBooking)
		r.Post("/bookings/{bookingID}/cancel", h.CancelBooking)

		r.Post("/quotes/{quoteID}/accept", h.AcceptQuote)

		r.Get("/packages", h.ListPackages)
		r.Get("/packages/{packageID}", h.GetPackage)

		r.Post("/documents", h.UploadDocument)
		r.Get("/documents", h.ListDocuments)
		r.Get("/documents/{documentID}/download", h.DownloadDocument)
		r.Delete("/documents/{documentID}", h.DeleteDocument)

		r.Get("/analytics", h.MyAnalytics)
	})

	// staff and admins
	r.Route("/admin", func(r chi.Router) {
		r.Use(sec.RequireAuth, RequireStaff)

		r.Get("/customers", h.ListCustomers)
		r.Get("/customers/{customerID}", h.GetCustomer)
		r.Get("/customers/{customerID}/documents", h.ListCustomerDocuments)
		r.Get("/customers/{customerID}/analytics", h.CustomerAnalytics)

		r.Get("/vehicles", h.ListVehicles)
		r.Post("/vehicles", h.CreateVehicle)
		r.Put("/vehicles/{vehicleID}", h.UpdateVehicle)
		r.Get("/routes", h.RoutePlan)

		r.Put("/rates", h.UpsertRate)

		r.Post("/packages", h.ReceivePackage)
		r.Get("/packages", h.ListPackages)
		r.Get("/packages/{packageID}", h.GetPackage)
		r.Patch("/packages/{packageID}/status", h.UpdatePackageStatus)

		r.Get("/blog/posts", h.ListPosts)
		r.Post("/blog/posts", h.CreatePost)
		r.Post("/blog/analyze", h.AnalyzePost)
		r.Get("/blog/posts/{postID}", h.GetPost)
		r.Put("/blog/posts/{postID}", h.UpdatePost)
		r.Delete("/blog/posts/{postID}", h.DeletePost)
		r.Post("/blog/posts/{postID}/publish", h.PublishPost)
		r.Post("/blog/posts/{postID}/unpublish", h.UnpublishPost)
	})

	return r
}

// decodeJSON decodes the body of r into v. Unknown fields, trailing data and
// oversized bodies are bad requests.
func (h Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return serrors.With(serrors.ErrPayloadTooLarge, "request body exceeds %d bytes", maxErr.Limit)
		case errors.Is(err, io.EOF):
			return serrors.With(serrors.ErrBadRequest, "request body is empty")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
		}
	}
	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: trailing data")
	}

	return nil
}

// pathID parses the path parameter name as an identifier.
func pathID[T ~[16]byte](r *http.Request, name string) (T, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return T{}, serrors.With(serrors.ErrBadRequest, "invalid %s %q", name, raw)
	}

	return T(id), nil
}

// queryID parses an optional identifier from the query string.
func queryID[T ~[16]byte](r *http.Request, name string) (*T, error) {
	return optionalID[T](r.URL.Query().Get(name), name)
}

// optionalID parses raw as an identifier. An empty raw is no identifier.
func optionalID[T ~[16]byte](raw, name string) (*T, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid %s %q", name, raw)
	}
	v := T(id)

	return &v, nil
}

// queryLimit parses the limit query parameter. Services clamp it further.
func queryLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
	}

	return uint(n), nil
}

// queryFloat parses an optional float query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a number", name)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a finite number", name)
	}

	return f, nil
}

// queryTime parses an optional RFC 3339 timestamp or YYYY-MM-DD date.
func queryTime(r *http.Request, name string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}

	return time.Time{}, serrors.With(serrors.ErrBadRequest, "%s must be an RFC 3339 timestamp or a YYYY-MM-DD date", name)
}

// attachment formats a Content-Disposition header for a download.
func attachment(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q", fileName)
}
