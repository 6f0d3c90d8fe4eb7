// Package document keeps customer uploads in object storage and their
// metadata in the database.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"qcscargo/internal/config"
	"qcscargo/internal/customer"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/objectstore"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/xid"
	"go.uber.org/zap"
)

const maxFileNameLength = 100

// allowedTypes are the content types accepted for upload, detected from the
// file content rather than the client supplied header.
var allowedTypes = []string{ //nolint: gochecknoglobals
	"application/pdf",
	"image/png",
	"image/jpeg",
	"image/webp",
	"image/heic",
}

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`) //nolint: gochecknoglobals

// Options configure uploads.
type Options struct {
	// MaxSizeBytes is the largest file accepted. Larger uploads fail with
	// serrors.ErrPayloadTooLarge before anything is stored.
	MaxSizeBytes int64
	// URLTTL is how long a presigned download link stays valid.
	URLTTL time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxSizeBytes: cfg.Documents.MaxSizeBytes,
		URLTTL:       cfg.Documents.URLTTL,
	}
}

// UploadRequest is a file uploaded by a customer.
type UploadRequest struct {
	Kind     domain.DocumentKind
	FileName string
	// PackageID optionally attaches the document to one of the caller's packages.
	PackageID *domain.PackageID
	Body      io.Reader
}

type service struct {
	options Options
	storage storage.Storage
	objects objectstore.Store
}

// SanitizeFileName reduces name to a safe object key segment.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	name = unsafeFileNameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")
	if len(name) > maxFileNameLength {
		ext := path.Ext(name)
		if len(ext) > 10 {
			ext = ""
		}
		name = name[:maxFileNameLength-len(ext)] + ext
	}
	if name == "" {
		return "file"
	}

	return name
}

// DetectContentType sniffs data and returns its content type when it is one
// of the accepted upload types.
func DetectContentType(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	for _, allowed := range allowedTypes {
		if mt.Is(allowed) {
			return allowed, nil
		}
	}

	return "", serrors.With(serrors.ErrBadRequest,
		"unsupported file type %s, upload a PDF or an image (PNG, JPEG, WebP, HEIC)", mt.String())
}

func (s service) read(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, s.options.MaxSizeBytes+1))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read upload")
	}
	if int64(len(data)) > s.options.MaxSizeBytes {
		return nil, serrors.With(serrors.ErrPayloadTooLarge,
			"file exceeds the %s limit", humanize.IBytes(uint64(s.options.MaxSizeBytes))) //nolint: gosec
	}
	if len(data) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "file is empty")
	}

	return data, nil
}

// Upload stores a document for the caller. The object is removed again when
// its metadata cannot be saved.
func (s service) Upload(ctx context.Context, principal domain.Principal, req UploadRequest) (*domain.Document, error) {
	if !req.Kind.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid document kind %q", req.Kind)
	}
	owner, err := customer.Of(ctx, s.storage, principal)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if req.PackageID != nil {
		p, err := s.storage.PackageByID(ctx, *req.PackageID)
		if err != nil {
			return nil, fmt.Errorf("could not get package: %w", err)
		}
		if p == nil || p.CustomerID != owner.ID {
			return nil, serrors.With(serrors.ErrNotFound, "package not found")
		}
	}

	data, err := s.read(req.Body)
	if err != nil {
		return nil, err
	}
	contentType, err := DetectContentType(data)
	if err != nil {
		return nil, err
	}

	name := SanitizeFileName(req.FileName)
	key := fmt.Sprintf("customers/%s/%s/%s", owner.ID, xid.New(), name)
	if err := s.objects.Put(ctx, objectstore.Object{
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}); err != nil {
		return nil, fmt.Errorf("could not upload document: %w", err)
	}

	doc, err := s.storage.CreateDocument(ctx, domain.Document{
		CustomerID:  owner.ID,
		PackageID:   req.PackageID,
		Kind:        req.Kind,
		FileName:    name,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		ObjectKey:   key,
	})
	if err != nil {
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			logger.Error(ctx, "could not remove orphaned document object",
				zap.String("key", key), zap.Error(delErr))
		}

		return nil, fmt.Errorf("could not store document: %w", err)
	}

	logger.Info(ctx, "document uploaded",
		zap.String("documentID", doc.ID.String()),
		zap.String("contentType", contentType),
		zap.String("size", humanize.IBytes(uint64(doc.SizeBytes)))) //nolint: gosec

	return doc, nil
}

// List lists documents newest first.
func (s service) List(ctx context.Context,
	principal domain.Principal,
	customerID *domain.CustomerID) ([]domain.Document, error) {
	var ID domain.CustomerID
	if principal.Role.IsStaff() && customerID != nil {
		ID = *customerID
	} else {
		owner, err := customer.Of(ctx, s.storage, principal)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		ID = owner.ID
	}

	docs, err := s.storage.CustomerDocuments(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not list documents: %w", err)
	}

	return docs, nil
}

func (s service) get(ctx context.Context, principal domain.Principal, ID domain.DocumentID) (*domain.Document, error) {
	doc, err := s.storage.DocumentByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}
	if principal.Role.IsStaff() {
		return doc, nil
	}

	owner, err := customer.Of(ctx, s.storage, principal)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if owner.ID != doc.CustomerID {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	return doc, nil
}

// DownloadURL returns a short lived link to the document.
func (s service) DownloadURL(ctx context.Context, principal domain.Principal, ID domain.DocumentID) (string, error) {
	doc, err := s.get(ctx, principal, ID)
	if err != nil {
		return "", err
	}

	link, err := s.objects.PresignGet(ctx, doc.ObjectKey, doc.FileName, s.options.URLTTL)
	if err != nil {
		return "", fmt.Errorf("could not sign document URL: %w", err)
	}

	return link, nil
}

// Delete removes the document metadata and its object.
func (s service) Delete(ctx context.Context, principal domain.Principal, ID domain.DocumentID) error {
	if _, err := s.get(ctx, principal, ID); err != nil {
		return err
	}

	doc, err := s.storage.DeleteDocument(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete document: %w", err)
	}
	if doc == nil {
		return serrors.With(serrors.ErrNotFound, "document not found")
	}

	if err := s.objects.Delete(ctx, doc.ObjectKey); err != nil {
		logger.Warn(ctx, "could not remove document object",
			zap.String("key", doc.ObjectKey), zap.Error(err))
	}

	return nil
}

// New creates a document Service.
func New(storage storage.Storage, objects objectstore.Store, options Options) Service {
	return &service{options: options, storage: storage, objects: objects}
}
