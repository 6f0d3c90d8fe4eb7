package quote

import (
	"math"

	"qcscargo/pkg/domain"
)

// Line codes of a quote breakdown.
const (
	LineFreight   = "FREIGHT"
	LineFuel      = "FUEL"
	LineHandling  = "HANDLING"
	LineInsurance = "INSURANCE"
)

// Tariff holds the pricing parameters that do not depend on the destination.
type Tariff struct {
	// VolumetricDivisor converts cm³ to volumetric kg.
	VolumetricDivisor float64
	// FuelSurchargePercent is charged on the freight line.
	FuelSurchargePercent float64
	// HandlingFeeCents is charged once per piece.
	HandlingFeeCents int64
	// InsuranceRatePercent of the declared value is charged for insured
	// shipments, never less than InsuranceMinimumCents.
	InsuranceRatePercent  float64
	InsuranceMinimumCents int64
}

// Pricing is the result of pricing a shipment.
type Pricing struct {
	ActualWeightKg     float64
	VolumetricWeightKg float64
	ChargeableWeightKg float64
	Lines              []domain.QuoteLine
	TotalCents         int64
}

// basisPoints converts a percentage to hundredths of a percent.
func basisPoints(percent float64) int64 {
	return int64(math.Round(percent * 100))
}

// applyBasisPoints returns cents * bp / 10000 rounded half up.
func applyBasisPoints(cents, bp int64) int64 {
	return (cents*bp + 5000) / 10000
}

// roundUpHalfKg rounds kg up to the next 0.5 kg and returns it in half kilograms.
func roundUpHalfKg(kg float64) int64 {
	// tolerate float noise such as 2.0000000001
	return int64(math.Ceil(kg*2 - 1e-9))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// VolumetricWeight returns the volumetric weight of a piece in kg.
func VolumetricWeight(p domain.Piece, divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}

	return p.LengthCm * p.WidthCm * p.HeightCm / divisor
}

// Price prices pieces with rate and tariff. Each piece is charged by the
// larger of its actual and volumetric weight; the sum is rounded up to the
// next half kilogram. Money is computed in integer cents, rounding half up.
func Price(pieces []domain.Piece,
	rate domain.ShippingRate,
	tariff Tariff,
	declaredValueCents int64,
	insured bool) Pricing {
	var actual, volumetric, chargeable float64
	for _, p := range pieces {
		v := VolumetricWeight(p, tariff.VolumetricDivisor)
		actual += p.WeightKg
		volumetric += v
		chargeable += math.Max(p.WeightKg, v)
	}

	halfKg := roundUpHalfKg(chargeable)
	freight := (halfKg*rate.RatePerKgCents + 1) / 2
	if freight < rate.MinimumCents {
		freight = rate.MinimumCents
	}

	lines := []domain.QuoteLine{
		{Code: LineFreight, Description: "Freight", AmountCents: freight},
		{
			Code:        LineFuel,
			Description: "Fuel surcharge",
			AmountCents: applyBasisPoints(freight, basisPoints(tariff.FuelSurchargePercent)),
		},
		{
			Code:        LineHandling,
			Description: "Handling",
			AmountCents: int64(len(pieces)) * tariff.HandlingFeeCents,
		},
	}
	if insured {
		premium := applyBasisPoints(declaredValueCents, basisPoints(tariff.InsuranceRatePercent))
		if premium < tariff.InsuranceMinimumCents {
			premium = tariff.InsuranceMinimumCents
		}
		lines = append(lines, domain.QuoteLine{Code: LineInsurance, Description: "Insurance", AmountCents: premium})
	}

	var total int64
	for _, l := range lines {
		total += l.AmountCents
	}

	return Pricing{
		ActualWeightKg:     round2(actual),
		VolumetricWeightKg: round2(volumetric),
		ChargeableWeightKg: float64(halfKg) / 2,
		Lines:              lines,
		TotalCents:         total,
	}
}
