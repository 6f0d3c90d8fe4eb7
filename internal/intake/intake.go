// Package intake records inbound packages against customer mailboxes and
// moves them through the warehouse lifecycle.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"qcscargo/internal/customer"
	"qcscargo/internal/jobs"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/metrics"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"

	"go.uber.org/zap"
)

const (
	maxTrackingLength    = 64
	maxDescriptionLength = 500
	maxWeightKg          = 1000
	maxDimensionCm       = 400
)

// ReceiveRequest describes a package scanned in at the warehouse.
type ReceiveRequest struct {
	MailboxNumber  string
	TrackingNumber string
	// Carrier overrides detection when set.
	Carrier     domain.Carrier
	Description string
	WeightKg    float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
	Notes       string
}

// StatusRequest moves a package to another status.
type StatusRequest struct {
	Status domain.PackageStatus
	// Notes replace the package notes when not nil.
	Notes *string
}

// ListFilter narrows a package listing. Customers always see their own
// packages; CustomerID is honoured for staff only.
type ListFilter struct {
	CustomerID *domain.CustomerID
	Status     domain.PackageStatus
	Cursor     string
	Limit      uint
}

// transitions lists the statuses a package may move to from each status.
// DELIVERED is final.
var transitions = map[domain.PackageStatus][]domain.PackageStatus{ //nolint: gochecknoglobals
	domain.PackageStatusReceived:   {domain.PackageStatusProcessing, domain.PackageStatusOnHold},
	domain.PackageStatusProcessing: {domain.PackageStatusShipped, domain.PackageStatusOnHold},
	domain.PackageStatusShipped:    {domain.PackageStatusDelivered, domain.PackageStatusOnHold},
	domain.PackageStatusOnHold: {
		domain.PackageStatusReceived, domain.PackageStatusProcessing, domain.PackageStatusShipped,
	},
}

// CanTransition reports whether a package may move from one status to another.
func CanTransition(from, to domain.PackageStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}

	return false
}

type service struct {
	storage storage.Storage
}

func validMeasure(name string, v, maxV float64) error {
	if v < 0 || v > maxV {
		return serrors.With(serrors.ErrBadRequest, "%s must be between 0 and %g", name, maxV)
	}

	return nil
}

func (s service) normalize(req *ReceiveRequest) error {
	req.MailboxNumber = strings.ToUpper(strings.TrimSpace(req.MailboxNumber))
	if req.MailboxNumber == "" {
		return serrors.With(serrors.ErrBadRequest, "mailbox number is required")
	}
	req.TrackingNumber = NormalizeTracking(req.TrackingNumber)
	if req.TrackingNumber == "" || len(req.TrackingNumber) > maxTrackingLength {
		return serrors.With(serrors.ErrBadRequest, "tracking number must be between 1 and %d characters", maxTrackingLength)
	}
	switch req.Carrier {
	case "":
		req.Carrier = DetectCarrier(req.TrackingNumber)
	case domain.CarrierUPS, domain.CarrierFedEx, domain.CarrierUSPS,
		domain.CarrierDHL, domain.CarrierAmazon, domain.CarrierOther:
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown carrier %q", req.Carrier)
	}
	req.Description = strings.TrimSpace(req.Description)
	if len(req.Description) > maxDescriptionLength {
		return serrors.With(serrors.ErrBadRequest, "description must be at most %d characters", maxDescriptionLength)
	}
	if req.WeightKg <= 0 {
		return serrors.With(serrors.ErrBadRequest, "weight is required")
	}

	return errors.Join(
		validMeasure("weight", req.WeightKg, maxWeightKg),
		validMeasure("length", req.LengthCm, maxDimensionCm),
		validMeasure("width", req.WidthCm, maxDimensionCm),
		validMeasure("height", req.HeightCm, maxDimensionCm),
	)
}

// Receive records a package for the customer owning the mailbox and notifies
// them.
func (s service) Receive(ctx context.Context, staff domain.Principal, req ReceiveRequest) (*domain.Package, error) {
	if err := s.normalize(&req); err != nil {
		return nil, err
	}

	owner, err := s.storage.CustomerByMailbox(ctx, req.MailboxNumber)
	if err != nil {
		return nil, fmt.Errorf("could not get customer: %w", err)
	}
	if owner == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no customer has mailbox %s", req.MailboxNumber)
	}

	var received *domain.Package
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		received, err = tx.CreatePackage(ctx, domain.Package{
			CustomerID:     owner.ID,
			TrackingNumber: req.TrackingNumber,
			Carrier:        req.Carrier,
			Description:    req.Description,
			WeightKg:       req.WeightKg,
			LengthCm:       req.LengthCm,
			WidthCm:        req.WidthCm,
			HeightCm:       req.HeightCm,
			Status:         domain.PackageStatusReceived,
			Notes:          strings.TrimSpace(req.Notes),
			ReceivedBy:     staff.UserID,
		})
		if err != nil {
			return fmt.Errorf("could not store package: %w", err)
		}

		return jobs.Notify(ctx, tx, *owner, notify.TemplatePackageReceived, map[string]string{
			"mailbox":        owner.MailboxNumber,
			"trackingNumber": received.TrackingNumber,
			"carrier":        string(received.Carrier),
			"weightKg":       strconv.FormatFloat(received.WeightKg, 'f', -1, 64),
		})
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "package %s was already received", req.TrackingNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("could not receive package: %w", err)
	}

	metrics.PackagesReceived.WithLabelValues(string(received.Carrier)).Inc()
	logger.Info(ctx, "package received",
		zap.String("packageID", received.ID.String()),
		zap.String("carrier", string(received.Carrier)),
		zap.String("mailbox", owner.MailboxNumber))

	return received, nil
}

// UpdateStatus moves a package along its lifecycle. Customers are notified
// when their package ships and when it is delivered.
func (s service) UpdateStatus(ctx context.Context, ID domain.PackageID, req StatusRequest) (*domain.Package, error) {
	if !req.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", req.Status)
	}

	p, err := s.storage.PackageByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get package: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "package not found")
	}
	if !CanTransition(p.Status, req.Status) {
		return nil, serrors.With(serrors.ErrConflict, "package cannot move from %s to %s", p.Status, req.Status)
	}

	var updated *domain.Package
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err = tx.UpdatePackageStatus(ctx, ID, p.Status, req.Status, req.Notes)
		if err != nil {
			return fmt.Errorf("could not update package: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "package was changed concurrently")
		}

		var template notify.Template
		switch req.Status {
		case domain.PackageStatusShipped:
			template = notify.TemplatePackageShipped
		case domain.PackageStatusDelivered:
			template = notify.TemplatePackageDelivered
		default:
			return nil
		}

		owner, err := tx.CustomerByID(ctx, updated.CustomerID)
		if err != nil {
			return fmt.Errorf("could not get customer: %w", err)
		}
		if owner == nil {
			return nil
		}

		return jobs.Notify(ctx, tx, *owner, template, map[string]string{"trackingNumber": updated.TrackingNumber})
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "package status changed",
		zap.String("packageID", ID.String()),
		zap.String("from", string(p.Status)),
		zap.String("to", string(updated.Status)))

	return updated, nil
}

// Get returns a package. Customers only see their own packages.
func (s service) Get(ctx context.Context, principal domain.Principal, ID domain.PackageID) (*domain.Package, error) {
	p, err := s.storage.PackageByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get package: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "package not found")
	}
	if principal.Role.IsStaff() {
		return p, nil
	}

	c, err := customer.Of(ctx, s.storage, principal)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if c.ID != p.CustomerID {
		return nil, serrors.With(serrors.ErrNotFound, "package not found")
	}

	return p, nil
}

// List lists packages newest first.
func (s service) List(ctx context.Context,
	principal domain.Principal,
	filter ListFilter) ([]domain.Package, string, error) {
	cursor, err := customer.ParseCursor(filter.Cursor)
	if err != nil {
		return nil, "", err //nolint: wrapcheck
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", filter.Status)
	}

	f := storage.PackageFilter{
		CustomerID: filter.CustomerID,
		Status:     filter.Status,
		Cursor:     cursor,
		Limit:      customer.ClampLimit(filter.Limit),
	}
	if !principal.Role.IsStaff() {
		c, err := customer.Of(ctx, s.storage, principal)
		if err != nil {
			return nil, "", err //nolint: wrapcheck
		}
		f.CustomerID = &c.ID
	}

	page, err := s.storage.Packages(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("could not list packages: %w", err)
	}

	return page.Items, customer.FormatCursor(page.NextCursor), nil
}

// New creates an intake Service.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
