package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingID uniquely identifies a pickup booking.
type BookingID uuid.UUID

// String returns the canonical UUID representation.
func (id BookingID) String() string { return uuid.UUID(id).String() }

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingStatusConfirmed indicates a vehicle has been allocated.
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	// BookingStatusCancelled indicates the customer cancelled; capacity is released.
	BookingStatusCancelled BookingStatus = "CANCELLED"
	// BookingStatusCompleted indicates the pickup happened.
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// Booking is a customer pickup scheduled on a vehicle for a time window.
type Booking struct {
	ID         BookingID  `json:"id"`
	CustomerID CustomerID `json:"customerId"`
	VehicleID  VehicleID  `json:"vehicleId"`

	// Reference is the human readable booking number, e.g. "BK-cv37img5tppgl4002kb0".
	Reference string `json:"reference"`
	// IdempotencyKey is the client supplied key the booking was created with.
	IdempotencyKey string `json:"-"`
	// Fingerprint is a hash of the request the booking was created from; a
	// replay with the same key but another fingerprint is a conflict.
	Fingerprint string `json:"-"`

	Window   TimeWindow    `json:"window"`
	Pickup   Address       `json:"pickup"`
	WeightKg float64       `json:"weightKg"`
	VolumeM3 float64       `json:"volumeM3"`
	Pieces   int           `json:"pieces"`
	Notes    string        `json:"notes,omitempty"`
	Status   BookingStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
