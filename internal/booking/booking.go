// Package booking schedules customer pickups on the vehicle fleet. Creating a
// booking is idempotent per customer and key, and allocation is serialised
// per pickup day with Postgres advisory locks so two concurrent requests
// never overbook a vehicle.
package booking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"qcscargo/internal/capacity"
	"qcscargo/internal/config"
	"qcscargo/internal/customer"
	"qcscargo/internal/jobs"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/metrics"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

const (
	minKeyLength   = 8
	maxKeyLength   = 128
	maxNotesLength = 1000

	referencePrefix = "BK-"
	displayLayout   = "Mon Jan 2, 3:04 PM"
)

// Options configure booking validation and day boundaries.
type Options struct {
	// MaxWindow is the longest pickup window a customer may book. Zero
	// disables the check.
	MaxWindow time.Duration
	// MinLeadTime is how far ahead of now a pickup window must start.
	MinLeadTime time.Duration
	// ClusterPrefixLength is the number of leading postal code characters
	// bookings are grouped by in the route plan.
	ClusterPrefixLength int
	// Location is the warehouse time zone pickup days are computed in.
	Location *time.Location
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) (Options, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return Options{}, fmt.Errorf("could not load time zone %q: %w", cfg.Booking.TimeZone, err)
	}

	return Options{
		MaxWindow:           cfg.Booking.MaxWindow,
		MinLeadTime:         cfg.Booking.MinLeadTime,
		ClusterPrefixLength: cfg.Booking.ClusterPrefixLength,
		Location:            loc,
	}, nil
}

// Request is a pickup booking request.
type Request struct {
	Window   domain.TimeWindow
	Pickup   domain.Address
	WeightKg float64
	VolumeM3 float64
	Pieces   int
	Notes    string
}

// AvailabilityRequest asks for the fleet capacity left in a window.
type AvailabilityRequest struct {
	Window     domain.TimeWindow
	WeightKg   float64
	VolumeM3   float64
	PostalCode string
}

type service struct {
	options Options
	storage storage.Storage
}

func (s service) validateWindow(w domain.TimeWindow) error {
	if !w.Valid() {
		return serrors.With(serrors.ErrBadRequest, "pickup window must end after it starts")
	}
	if s.options.MaxWindow > 0 && w.Duration() > s.options.MaxWindow {
		return serrors.With(serrors.ErrBadRequest, "pickup window must not be longer than %s", s.options.MaxWindow)
	}

	return nil
}

func (s service) normalize(req *Request) error {
	if err := s.validateWindow(req.Window); err != nil {
		return err
	}
	if earliest := time.Now().Add(s.options.MinLeadTime); req.Window.Start.Before(earliest) {
		return serrors.With(serrors.ErrBadRequest, "pickup window must start at least %s from now", s.options.MinLeadTime)
	}
	if !finite(req.WeightKg) || !finite(req.VolumeM3) {
		return serrors.With(serrors.ErrBadRequest, "weight and volume must be finite numbers")
	}
	if req.WeightKg <= 0 {
		return serrors.With(serrors.ErrBadRequest, "weight must be positive")
	}
	if req.VolumeM3 < 0 {
		return serrors.With(serrors.ErrBadRequest, "volume must not be negative")
	}
	if req.Pieces == 0 {
		req.Pieces = 1
	}
	if req.Pieces < 0 {
		return serrors.With(serrors.ErrBadRequest, "pieces must be positive")
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if len(req.Notes) > maxNotesLength {
		return serrors.With(serrors.ErrBadRequest, "notes must not be longer than %d characters", maxNotesLength)
	}

	p := &req.Pickup
	p.Line1 = strings.TrimSpace(p.Line1)
	p.Line2 = strings.TrimSpace(p.Line2)
	p.City = strings.TrimSpace(p.City)
	p.State = strings.ToUpper(strings.TrimSpace(p.State))
	p.PostalCode = strings.ToUpper(strings.TrimSpace(p.PostalCode))
	p.Country = strings.ToUpper(strings.TrimSpace(p.Country))
	if p.Country == "" {
		p.Country = "US"
	}
	if p.Line1 == "" || p.PostalCode == "" {
		return serrors.With(serrors.ErrBadRequest, "pickup address and postal code are required")
	}

	return nil
}

// Fingerprint hashes the normalised request. A retried request with the
// same idempotency key must have the same fingerprint.
func Fingerprint(req Request) string {
	b, _ := json.Marshal(struct { //nolint: errchkjson
		Start    string         `json:"start"`
		End      string         `json:"end"`
		Pickup   domain.Address `json:"pickup"`
		WeightKg float64        `json:"weightKg"`
		VolumeM3 float64        `json:"volumeM3"`
		Pieces   int            `json:"pieces"`
		Notes    string         `json:"notes"`
	}{
		Start:    req.Window.Start.UTC().Format(time.RFC3339Nano),
		End:      req.Window.End.UTC().Format(time.RFC3339Nano),
		Pickup:   req.Pickup,
		WeightKg: req.WeightKg,
		VolumeM3: req.VolumeM3,
		Pieces:   req.Pieces,
		Notes:    req.Notes,
	})
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:])
}

// days returns the warehouse calendar days w touches, oldest first.
func (s service) days(w domain.TimeWindow) []string {
	var out []string
	for d := domain.Day(w.Start.In(s.options.Location)); d.Start.Before(w.End); d = domain.Day(d.End) {
		out = append(out, d.Start.Format(time.DateOnly))
	}

	return out
}

func (s service) replay(existing *domain.Booking, fingerprint string) (*domain.Booking, error) {
	if existing.Fingerprint != fingerprint {
		return nil, serrors.With(serrors.ErrConflict, "idempotency key was already used with a different request")
	}

	return existing, nil
}

// Create validates req, allocates a vehicle and stores the booking together
// with its confirmation notification.
func (s service) Create(ctx context.Context,
	principal domain.Principal,
	idempotencyKey string,
	req Request) (*domain.Booking, bool, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if len(idempotencyKey) < minKeyLength || len(idempotencyKey) > maxKeyLength {
		return nil, false, serrors.With(serrors.ErrBadRequest,
			"Idempotency-Key must be between %d and %d characters", minKeyLength, maxKeyLength)
	}
	if err := s.normalize(&req); err != nil {
		return nil, false, err
	}
	fingerprint := Fingerprint(req)

	c, err := customer.Of(ctx, s.storage, principal)
	if err != nil {
		return nil, false, err //nolint: wrapcheck
	}
	ctx = logger.WithFields(ctx, zap.String("customerID", c.ID.String()), zap.String("idempotencyKey", idempotencyKey))

	var (
		booking  *domain.Booking
		replayed bool
	)
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.AdvisoryLock(ctx, "booking-key:"+c.ID.String()+":"+idempotencyKey); err != nil {
			return fmt.Errorf("could not lock idempotency key: %w", err)
		}
		existing, err := tx.BookingByIdempotencyKey(ctx, c.ID, idempotencyKey)
		if err != nil {
			return fmt.Errorf("could not look up idempotency key: %w", err)
		}
		if existing != nil {
			booking, err = s.replay(existing, fingerprint)
			replayed = err == nil

			return err
		}

		for _, day := range s.days(req.Window) {
			if err := tx.AdvisoryLock(ctx, "booking-day:"+day); err != nil {
				return fmt.Errorf("could not lock pickup day: %w", err)
			}
		}

		vehicles, err := tx.Vehicles(ctx, true)
		if err != nil {
			return fmt.Errorf("could not list vehicles: %w", err)
		}
		booked, err := tx.BookingsInWindow(ctx, req.Window)
		if err != nil {
			return fmt.Errorf("could not list bookings: %w", err)
		}
		sel, err := capacity.SelectVehicle(vehicles, booked, capacity.Request{
			Window:     req.Window,
			WeightKg:   req.WeightKg,
			VolumeM3:   req.VolumeM3,
			PostalCode: req.Pickup.PostalCode,
		})
		if err != nil {
			return err //nolint: wrapcheck
		}

		booking, err = tx.CreateBooking(ctx, domain.Booking{
			CustomerID:     c.ID,
			VehicleID:      sel.Vehicle.ID,
			Reference:      referencePrefix + xid.New().String(),
			IdempotencyKey: idempotencyKey,
			Fingerprint:    fingerprint,
			Window:         req.Window,
			Pickup:         req.Pickup,
			WeightKg:       req.WeightKg,
			VolumeM3:       req.VolumeM3,
			Pieces:         req.Pieces,
			Notes:          req.Notes,
			Status:         domain.BookingStatusConfirmed,
		})
		if err != nil {
			return fmt.Errorf("could not create booking: %w", err)
		}
		logger.Debug(ctx, "vehicle selected",
			zap.String("vehicle", sel.Vehicle.Name),
			zap.Float64("score", sel.Score),
			zap.Bool("areaMatched", sel.AreaMatched))

		return jobs.Notify(ctx, tx, *c, notify.TemplateBookingConfirmed, s.notificationData(*booking))
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// another request with the same key committed first
		existing, lerr := s.storage.BookingByIdempotencyKey(ctx, c.ID, idempotencyKey)
		if lerr != nil {
			return nil, false, fmt.Errorf("could not look up idempotency key: %w", lerr)
		}
		if existing != nil {
			booking, err := s.replay(existing, fingerprint)

			return booking, err == nil, err
		}
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not book pickup: %w", err)
	}

	if replayed {
		logger.Info(ctx, "booking replayed", zap.String("reference", booking.Reference))
	} else {
		metrics.BookingsCreated.Inc()
		logger.Info(ctx, "booking created", zap.String("reference", booking.Reference))
	}

	return booking, replayed, nil
}

func (s service) notificationData(b domain.Booking) map[string]string {
	return map[string]string{
		"reference":   b.Reference,
		"windowStart": b.Window.Start.In(s.options.Location).Format(displayLayout),
		"windowEnd":   b.Window.End.In(s.options.Location).Format(displayLayout),
		"address":     b.Pickup.String(),
	}
}

// Get returns a booking. Customers only see their own bookings.
func (s service) Get(ctx context.Context, principal domain.Principal, ID domain.BookingID) (*domain.Booking, error) {
	b, err := s.storage.BookingByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get booking: %w", err)
	}
	if b == nil {
		return nil, serrors.With(serrors.ErrNotFound, "booking not found")
	}
	if principal.Role.IsStaff() {
		return b, nil
	}

	c, err := customer.Of(ctx, s.storage, principal)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if b.CustomerID != c.ID {
		return nil, serrors.With(serrors.ErrNotFound, "booking not found")
	}

	return b, nil
}

// List returns the caller's bookings, newest first.
func (s service) List(ctx context.Context,
	principal domain.Principal,
	cursor string,
	limit uint) ([]domain.Booking, string, error) {
	cursorTime, err := customer.ParseCursor(cursor)
	if err != nil {
		return nil, "", err //nolint: wrapcheck
	}
	c, err := customer.Of(ctx, s.storage, principal)
	if err != nil {
		return nil, "", err //nolint: wrapcheck
	}

	page, err := s.storage.CustomerBookings(ctx, c.ID, cursorTime, customer.ClampLimit(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list bookings: %w", err)
	}

	return page.Items, customer.FormatCursor(page.NextCursor), nil
}

// Cancel cancels a confirmed booking whose window has not started yet and
// notifies the customer.
func (s service) Cancel(ctx context.Context, principal domain.Principal, ID domain.BookingID) (*domain.Booking, error) {
	b, err := s.Get(ctx, principal, ID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, serrors.With(serrors.ErrConflict, "booking is %s and cannot be cancelled", b.Status)
	}
	if !time.Now().Before(b.Window.Start) {
		return nil, serrors.With(serrors.ErrConflict, "pickup window has already started")
	}

	var cancelled *domain.Booking
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		cancelled, err = tx.UpdateBookingStatus(ctx, ID, domain.BookingStatusConfirmed, domain.BookingStatusCancelled)
		if err != nil {
			return fmt.Errorf("could not cancel booking: %w", err)
		}
		if cancelled == nil {
			return serrors.With(serrors.ErrConflict, "booking was changed concurrently")
		}

		owner, err := tx.CustomerByID(ctx, cancelled.CustomerID)
		if err != nil {
			return fmt.Errorf("could not get customer: %w", err)
		}
		if owner == nil {
			return nil
		}

		return jobs.Notify(ctx, tx, *owner, notify.TemplateBookingCancelled, s.notificationData(*cancelled))
	}); err != nil {
		return nil, fmt.Errorf("could not cancel booking: %w", err)
	}

	logger.Info(ctx, "booking cancelled", zap.String("reference", cancelled.Reference))

	return cancelled, nil
}

// Availability reports the fleet capacity left in a window and whether a
// booking of the requested load would fit.
func (s service) Availability(ctx context.Context, req AvailabilityRequest) (*Availability, error) {
	if err := s.validateWindow(req.Window); err != nil {
		return nil, err
	}
	if !finite(req.WeightKg) || !finite(req.VolumeM3) {
		return nil, serrors.With(serrors.ErrBadRequest, "weight and volume must be finite numbers")
	}
	if req.WeightKg < 0 || req.VolumeM3 < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "weight and volume must not be negative")
	}

	vehicles, err := s.storage.Vehicles(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("could not list vehicles: %w", err)
	}
	booked, err := s.storage.BookingsInWindow(ctx, req.Window)
	if err != nil {
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}

	_, selErr := capacity.SelectVehicle(vehicles, booked, capacity.Request{
		Window:     req.Window,
		WeightKg:   req.WeightKg,
		VolumeM3:   req.VolumeM3,
		PostalCode: req.PostalCode,
	})

	return &Availability{
		Window:    req.Window,
		Available: selErr == nil,
		Vehicles:  capacity.Availability(vehicles, booked, req.Window, req.PostalCode),
	}, nil
}

// RoutePlan clusters the bookings of the warehouse day containing day and
// orders them into per-vehicle routes.
func (s service) RoutePlan(ctx context.Context, day time.Time) (*RoutePlan, error) {
	window := domain.Day(day.In(s.options.Location))

	vehicles, err := s.storage.Vehicles(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("could not list vehicles: %w", err)
	}
	booked, err := s.storage.BookingsInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}

	clusters := capacity.ClusterRoutes(booked, s.options.ClusterPrefixLength)

	return &RoutePlan{
		Day:      window,
		Clusters: clusters,
		Routes:   capacity.PlanRoutes(vehicles, clusters),
	}, nil
}

// New creates a booking Service.
func New(storage storage.Storage, options Options) Service {
	if options.Location == nil {
		options.Location = time.UTC
	}

	return &service{options: options, storage: storage}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
