package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackageID uniquely identifies a package received at the warehouse.
type PackageID uuid.UUID

// String returns the canonical UUID representation.
func (id PackageID) String() string { return uuid.UUID(id).String() }

// Carrier is the inbound carrier that delivered a package to the warehouse.
type Carrier string

const (
	CarrierUPS    Carrier = "UPS"
	CarrierFedEx  Carrier = "FEDEX"
	CarrierUSPS   Carrier = "USPS"
	CarrierDHL    Carrier = "DHL"
	CarrierAmazon Carrier = "AMAZON"
	CarrierOther  Carrier = "OTHER"
)

// PackageStatus is the warehouse lifecycle of a package.
type PackageStatus string

const (
	PackageStatusReceived   PackageStatus = "RECEIVED"
	PackageStatusProcessing PackageStatus = "PROCESSING"
	PackageStatusOnHold     PackageStatus = "ON_HOLD"
	PackageStatusShipped    PackageStatus = "SHIPPED"
	PackageStatusDelivered  PackageStatus = "DELIVERED"
)

// Valid reports whether s is a known package status.
func (s PackageStatus) Valid() bool {
	switch s {
	case PackageStatusReceived, PackageStatusProcessing, PackageStatusOnHold,
		PackageStatusShipped, PackageStatusDelivered:
		return true
	default:
		return false
	}
}

// Package is a parcel received at the warehouse on behalf of a customer.
type Package struct {
	ID         PackageID  `json:"id"`
	CustomerID CustomerID `json:"customerId"`

	TrackingNumber string        `json:"trackingNumber"`
	Carrier        Carrier       `json:"carrier"`
	Description    string        `json:"description,omitempty"`
	WeightKg       float64       `json:"weightKg"`
	LengthCm       float64       `json:"lengthCm,omitempty"`
	WidthCm        float64       `json:"widthCm,omitempty"`
	HeightCm       float64       `json:"heightCm,omitempty"`
	Status         PackageStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`

	ReceivedBy UserID    `json:"receivedBy"`
	ReceivedAt time.Time `json:"receivedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
