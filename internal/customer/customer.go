// Package customer manages customer profiles and the pickup fleet.
package customer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"qcscargo/internal/capacity"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"
)

const (
	maxNameLength = 200
	maxPageSize   = 100
)

// RegisterRequest holds the profile fields given at registration.
type RegisterRequest struct {
	Name             string
	Email            string
	Phone            string
	PreferredChannel domain.Channel
	Destination      string
}

// UpdateRequest lists profile changes. Nil fields are left untouched.
type UpdateRequest struct {
	Name             *string
	Phone            *string
	PreferredChannel *domain.Channel
	Destination      *string
}

type service struct {
	storage            storage.Storage
	defaultCountryCode string
}

func validName(name string) error {
	if name == "" || len(name) > maxNameLength {
		return serrors.With(serrors.ErrBadRequest, "name must be between 1 and %d characters", maxNameLength)
	}

	return nil
}

func validDestination(dest string) (string, error) {
	dest = strings.ToUpper(strings.TrimSpace(dest))
	if dest != "" && len(dest) != 2 {
		return "", serrors.With(serrors.ErrBadRequest, "destination must be an ISO 3166-1 alpha-2 country code")
	}

	return dest, nil
}

func (s service) phone(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	phone, err := notify.NormalizePhone(raw, s.defaultCountryCode)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return phone, nil
}

// Register creates the profile of the calling user.
func (s service) Register(ctx context.Context, principal domain.Principal, req RegisterRequest) (*domain.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validName(req.Name); err != nil {
		return nil, err
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid e-mail address")
	}
	phone, err := s.phone(req.Phone)
	if err != nil {
		return nil, err
	}
	if req.PreferredChannel == "" {
		req.PreferredChannel = domain.ChannelEmail
	}
	if !req.PreferredChannel.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid preferred channel %q", req.PreferredChannel)
	}
	if req.PreferredChannel != domain.ChannelEmail && phone == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "a phone number is required for %s notifications", req.PreferredChannel)
	}
	dest, err := validDestination(req.Destination)
	if err != nil {
		return nil, err
	}

	c, err := s.storage.CreateCustomer(ctx, domain.Customer{
		UserID:           principal.UserID,
		Name:             req.Name,
		Email:            strings.ToLower(addr.Address),
		Phone:            phone,
		PreferredChannel: req.PreferredChannel,
		Destination:      dest,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "customer profile already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not create customer: %w", err)
	}

	return c, nil
}

// Me returns the profile of the calling user.
func (s service) Me(ctx context.Context, principal domain.Principal) (*domain.Customer, error) {
	return Of(ctx, s.storage, principal)
}

// UpdateMe applies req to the profile of the calling user.
func (s service) UpdateMe(ctx context.Context, principal domain.Principal, req UpdateRequest) (*domain.Customer, error) {
	c, err := Of(ctx, s.storage, principal)
	if err != nil {
		return nil, err
	}

	updates := storage.CustomerUpdates{PreferredChannel: req.PreferredChannel}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validName(name); err != nil {
			return nil, err
		}
		updates.Name = &name
	}
	phone := c.Phone
	if req.Phone != nil {
		if phone, err = s.phone(*req.Phone); err != nil {
			return nil, err
		}
		updates.Phone = &phone
	}
	channel := c.PreferredChannel
	if req.PreferredChannel != nil {
		if !req.PreferredChannel.Valid() {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid preferred channel %q", *req.PreferredChannel)
		}
		channel = *req.PreferredChannel
	}
	if channel != domain.ChannelEmail && phone == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "a phone number is required for %s notifications", channel)
	}
	if req.Destination != nil {
		dest, err := validDestination(*req.Destination)
		if err != nil {
			return nil, err
		}
		updates.Destination = &dest
	}

	updated, err := s.storage.UpdateCustomer(ctx, c.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update customer: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "customer not found")
	}

	return updated, nil
}

// List returns a page of customers, newest first. cursor is the RFC3339
// timestamp returned with the previous page.
func (s service) List(ctx context.Context, cursor string, limit uint) ([]domain.Customer, string, error) {
	cursorTime, err := ParseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.Customers(ctx, cursorTime, ClampLimit(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list customers: %w", err)
	}

	return page.Items, FormatCursor(page.NextCursor), nil
}

// Get returns a customer by id.
func (s service) Get(ctx context.Context, ID domain.CustomerID) (*domain.Customer, error) {
	c, err := s.storage.CustomerByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get customer: %w", err)
	}
	if c == nil {
		return nil, serrors.With(serrors.ErrNotFound, "customer not found")
	}

	return c, nil
}

func validVehicle(vehicle *domain.Vehicle) error {
	vehicle.Name = strings.TrimSpace(vehicle.Name)
	if err := validName(vehicle.Name); err != nil {
		return err
	}
	if vehicle.CapacityKg <= 0 || vehicle.CapacityM3 <= 0 {
		return serrors.With(serrors.ErrBadRequest, "vehicle capacity must be positive")
	}
	areas := make([]string, 0, len(vehicle.ServiceAreas))
	for _, a := range vehicle.ServiceAreas {
		if a = capacity.NormalizePostalCode(a); a != "" {
			areas = append(areas, a)
		}
	}
	vehicle.ServiceAreas = areas

	return nil
}

// CreateVehicle adds a vehicle to the fleet.
func (s service) CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	if err := validVehicle(&vehicle); err != nil {
		return nil, err
	}

	v, err := s.storage.CreateVehicle(ctx, vehicle)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "vehicle %q already exists", vehicle.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create vehicle: %w", err)
	}

	return v, nil
}

// UpdateVehicle replaces a vehicle's name, capacity, service areas and
// active flag. Existing bookings keep their vehicle.
func (s service) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	if err := validVehicle(&vehicle); err != nil {
		return nil, err
	}

	v, err := s.storage.UpdateVehicle(ctx, vehicle)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "vehicle %q already exists", vehicle.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not update vehicle: %w", err)
	}
	if v == nil {
		return nil, serrors.With(serrors.ErrNotFound, "vehicle not found")
	}

	return v, nil
}

// Vehicles lists the fleet.
func (s service) Vehicles(ctx context.Context, activeOnly bool) ([]domain.Vehicle, error) {
	vs, err := s.storage.Vehicles(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list vehicles: %w", err)
	}

	return vs, nil
}

// Of returns the profile of principal or NOT_FOUND when the user has not
// registered yet. Other services use it to scope data to the caller.
func Of(ctx context.Context, customers storage.CustomerStorage, principal domain.Principal) (*domain.Customer, error) {
	c, err := customers.CustomerByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get customer: %w", err)
	}
	if c == nil {
		return nil, serrors.With(serrors.ErrNotFound, "customer profile not found, register first")
	}

	return c, nil
}

// ParseCursor parses an RFC3339 pagination cursor. An empty cursor is the
// zero time, which storage treats as "from the newest".
func ParseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return t, nil
}

// FormatCursor formats the next page cursor, empty on the last page.
func FormatCursor(next *time.Time) string {
	if next == nil {
		return ""
	}

	return next.Format(time.RFC3339Nano)
}

// ClampLimit bounds a page size to 1..100, defaulting to 20.
func ClampLimit(limit uint) uint {
	switch {
	case limit == 0:
		return 20
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

// New creates a customer Service.
func New(storage storage.Storage, defaultCountryCode string) Service {
	return &service{storage: storage, defaultCountryCode: defaultCountryCode}
}
