package domain

import "time"

// MonthlyVolume is the package volume received for a customer in one month.
type MonthlyVolume struct {
	Month    time.Time `json:"month"`
	Packages int64     `json:"packages"`
	WeightKg float64   `json:"weightKg"`
}

// CustomerAnalytics aggregates a customer's activity for the dashboard.
type CustomerAnalytics struct {
	CustomerID CustomerID `json:"customerId"`
	Since      time.Time  `json:"since"`

	TotalPackages    int64                   `json:"totalPackages"`
	PackagesByStatus map[PackageStatus]int64 `json:"packagesByStatus"`
	TotalWeightKg    float64                 `json:"totalWeightKg"`
	BookingsByStatus map[BookingStatus]int64 `json:"bookingsByStatus"`
	QuotesIssued     int64                   `json:"quotesIssued"`
	QuotesAccepted   int64                   `json:"quotesAccepted"`
	QuotedValueCents int64                   `json:"quotedValueCents"`
	Monthly          []MonthlyVolume         `json:"monthly"`
	LastActivityAt   *time.Time              `json:"lastActivityAt,omitempty"`
}
