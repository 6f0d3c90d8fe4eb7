package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuoteID uniquely identifies a shipping quote.
type QuoteID uuid.UUID

// String returns the canonical UUID representation.
func (id QuoteID) String() string { return uuid.UUID(id).String() }

// ServiceLevel is the freight product a quote is priced for.
type ServiceLevel string

const (
	ServiceLevelAirStandard ServiceLevel = "AIR_STANDARD"
	ServiceLevelAirExpress  ServiceLevel = "AIR_EXPRESS"
	ServiceLevelOcean       ServiceLevel = "OCEAN"
)

// Valid reports whether s is a known service level.
func (s ServiceLevel) Valid() bool {
	switch s {
	case ServiceLevelAirStandard, ServiceLevelAirExpress, ServiceLevelOcean:
		return true
	default:
		return false
	}
}

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusIssued   QuoteStatus = "ISSUED"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
)

// Piece is a single box or crate of a shipment.
type Piece struct {
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
}

// QuoteLine is one priced line of a quote.
type QuoteLine struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	AmountCents int64  `json:"amountCents"`
}

// ShippingRate is the tariff for a destination and service level.
type ShippingRate struct {
	Destination    string       `json:"destination"`
	ServiceLevel   ServiceLevel `json:"serviceLevel"`
	RatePerKgCents int64        `json:"ratePerKgCents"`
	MinimumCents   int64        `json:"minimumCents"`
	TransitDaysMin int          `json:"transitDaysMin"`
	TransitDaysMax int          `json:"transitDaysMax"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Quote is a priced offer for shipping pieces to a destination.
type Quote struct {
	ID         QuoteID     `json:"id"`
	CustomerID *CustomerID `json:"customerId,omitempty"`

	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Origin       string       `json:"origin"`
	Destination  string       `json:"destination"`
	ServiceLevel ServiceLevel `json:"serviceLevel"`
	Pieces       []Piece      `json:"pieces"`

	DeclaredValueCents int64 `json:"declaredValueCents"`
	Insured            bool  `json:"insured"`

	ActualWeightKg     float64     `json:"actualWeightKg"`
	VolumetricWeightKg float64     `json:"volumetricWeightKg"`
	ChargeableWeightKg float64     `json:"chargeableWeightKg"`
	Lines              []QuoteLine `json:"lines"`
	TotalCents         int64       `json:"totalCents"`
	Currency           string      `json:"currency"`
	TransitDaysMin     int         `json:"transitDaysMin"`
	TransitDaysMax     int         `json:"transitDaysMax"`

	Status    QuoteStatus `json:"status"`
	ExpiresAt time.Time   `json:"expiresAt"`
	CreatedAt time.Time   `json:"createdAt"`
}
