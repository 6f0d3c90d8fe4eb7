package booking

import (
	"context"
	"time"

	"qcscargo/internal/capacity"
	"qcscargo/pkg/domain"
)

//go:generate mockgen -package mockbooking -source=interface.go -destination=mock/mockbooking.go *
type Service interface {
	// Create books a pickup. The returned bool is true when the booking was
	// created by an earlier request with the same idempotency key.
	Create(ctx context.Context, principal domain.Principal, idempotencyKey string, req Request) (*domain.Booking, bool, error)
	Get(ctx context.Context, principal domain.Principal, ID domain.BookingID) (*domain.Booking, error)
	List(ctx context.Context, principal domain.Principal, cursor string, limit uint) ([]domain.Booking, string, error)
	Cancel(ctx context.Context, principal domain.Principal, ID domain.BookingID) (*domain.Booking, error)
	Availability(ctx context.Context, req AvailabilityRequest) (*Availability, error)
	RoutePlan(ctx context.Context, day time.Time) (*RoutePlan, error)
}

// Availability is the remaining fleet capacity for a window.
type Availability struct {
	Window domain.TimeWindow `json:"window"`
	// Available reports whether a booking of the requested load would be accepted.
	Available bool                       `json:"available"`
	Vehicles  []capacity.VehicleCapacity `json:"vehicles"`
}

// RoutePlan is the pickup plan of one day.
type RoutePlan struct {
	Day      domain.TimeWindow  `json:"day"`
	Clusters []capacity.Cluster `json:"clusters"`
	Routes   []capacity.Route   `json:"routes"`
}
