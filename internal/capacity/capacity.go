// Package capacity allocates pickup bookings to vehicles. It weighs existing
// bookings by how much of their time window overlaps the window being
// planned, picks the best fitting vehicle for a new booking and groups a
// day's bookings into routes by postal area. All functions are pure.
package capacity

import (
	"math"
	"sort"
	"strings"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/serrors"
)

const (
	// areaBonus is added to the score of vehicles matched by an explicit
	// service area prefix over vehicles serving every area.
	areaBonus = 0.25

	epsilon = 1e-9
)

// ErrNoCapacity is returned when no active vehicle serving the area can take
// the requested load in the requested window.
var ErrNoCapacity = serrors.With(serrors.ErrUnprocessable, "no vehicle has capacity left for the requested window") //nolint: gochecknoglobals

// ErrInvalidLoad is returned for a requested load that is negative or not a
// finite number.
var ErrInvalidLoad = serrors.With(serrors.ErrBadRequest, "requested load must be finite and not negative") //nolint: gochecknoglobals

// Load is an amount of weight and volume.
type Load struct {
	WeightKg float64 `json:"weightKg"`
	VolumeM3 float64 `json:"volumeM3"`
}

func (l Load) valid() bool {
	for _, f := range []float64{l.WeightKg, l.VolumeM3} {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return false
		}
	}

	return true
}

func (l Load) add(o Load) Load {
	return Load{WeightKg: l.WeightKg + o.WeightKg, VolumeM3: l.VolumeM3 + o.VolumeM3}
}

// Request describes the load a new booking needs moved.
type Request struct {
	Window     domain.TimeWindow
	WeightKg   float64
	VolumeM3   float64
	PostalCode string
}

// Selection is the vehicle picked for a request.
type Selection struct {
	Vehicle domain.Vehicle
	// Score is the post-assignment utilisation plus the area bonus.
	Score float64
	// AreaMatched is set when the vehicle lists a prefix of the postal code.
	AreaMatched bool
}

// VehicleCapacity is the remaining capacity of a vehicle within a window.
type VehicleCapacity struct {
	Vehicle   domain.Vehicle `json:"vehicle"`
	Booked    Load           `json:"booked"`
	Remaining Load           `json:"remaining"`
	// Utilisation is the larger of the weight and volume utilisation, 0..1.
	Utilisation float64 `json:"utilisation"`
}

// OverlapWeight returns the share of the booking's load attributed to
// window: the load scaled by the fraction of the booking window that
// overlaps it. Bookings with an invalid window count for nothing.
func OverlapWeight(booking domain.Booking, window domain.TimeWindow) Load {
	total := booking.Window.Duration()
	if total <= 0 {
		return Load{}
	}
	ratio := float64(booking.Window.Overlap(window)) / float64(total)

	return Load{WeightKg: booking.WeightKg * ratio, VolumeM3: booking.VolumeM3 * ratio}
}

// VehicleLoad sums the overlap weighted load of the non-cancelled bookings
// assigned to vehicle within window.
func VehicleLoad(vehicle domain.Vehicle, bookings []domain.Booking, window domain.TimeWindow) Load {
	var load Load
	for _, b := range bookings {
		if b.VehicleID != vehicle.ID || b.Status == domain.BookingStatusCancelled {
			continue
		}
		load = load.add(OverlapWeight(b, window))
	}

	return load
}

// NormalizePostalCode upper-cases code and strips spaces and dashes.
func NormalizePostalCode(code string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}

		return r
	}, strings.ToUpper(strings.TrimSpace(code)))
}

// serves reports whether vehicle serves postalCode and whether it did so by
// an explicit prefix.
func serves(vehicle domain.Vehicle, postalCode string) (ok, explicit bool) {
	if len(vehicle.ServiceAreas) == 0 {
		return true, false
	}
	code := NormalizePostalCode(postalCode)
	for _, area := range vehicle.ServiceAreas {
		if prefix := NormalizePostalCode(area); prefix != "" && strings.HasPrefix(code, prefix) {
			return true, true
		}
	}

	return false, false
}

func utilisation(used Load, vehicle domain.Vehicle) float64 {
	u := 0.0
	if vehicle.CapacityKg > 0 {
		u = used.WeightKg / vehicle.CapacityKg
	}
	if vehicle.CapacityM3 > 0 {
		u = math.Max(u, used.VolumeM3/vehicle.CapacityM3)
	}

	return u
}

func capacityOf(vehicle domain.Vehicle, bookings []domain.Booking, window domain.TimeWindow) VehicleCapacity {
	booked := VehicleLoad(vehicle, bookings, window)

	return VehicleCapacity{
		Vehicle: vehicle,
		Booked:  booked,
		Remaining: Load{
			WeightKg: math.Max(0, vehicle.CapacityKg-booked.WeightKg),
			VolumeM3: math.Max(0, vehicle.CapacityM3-booked.VolumeM3),
		},
		Utilisation: math.Min(1, utilisation(booked, vehicle)),
	}
}

// SelectVehicle picks the vehicle for req. Candidates are active vehicles
// serving the postal code whose remaining capacity in the window fits the
// request. The tightest fit wins; explicit service area matches get a bonus
// and ties go to the vehicle with the lower name.
func SelectVehicle(vehicles []domain.Vehicle, bookings []domain.Booking, req Request) (Selection, error) {
	var (
		best  Selection
		found bool
	)
	need := Load{WeightKg: req.WeightKg, VolumeM3: req.VolumeM3}
	if !need.valid() {
		return Selection{}, ErrInvalidLoad
	}

	for _, v := range vehicles {
		if !v.Active {
			continue
		}
		ok, explicit := serves(v, req.PostalCode)
		if !ok {
			continue
		}
		c := capacityOf(v, bookings, req.Window)
		if need.WeightKg > c.Remaining.WeightKg+epsilon || need.VolumeM3 > c.Remaining.VolumeM3+epsilon {
			continue
		}

		score := utilisation(c.Booked.add(need), v)
		if explicit {
			score += areaBonus
		}

		switch {
		case !found, score > best.Score+epsilon:
		case math.Abs(score-best.Score) <= epsilon && v.Name < best.Vehicle.Name:
		default:
			continue
		}
		best = Selection{Vehicle: v, Score: score, AreaMatched: explicit}
		found = true
	}

	if !found {
		return Selection{}, ErrNoCapacity
	}

	return best, nil
}

// Availability returns the remaining capacity of every active vehicle in
// window, ordered by vehicle name. A non-empty postalCode restricts the
// result to vehicles serving it.
func Availability(vehicles []domain.Vehicle, bookings []domain.Booking, window domain.TimeWindow, postalCode string) []VehicleCapacity {
	out := make([]VehicleCapacity, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.Active {
			continue
		}
		if postalCode != "" {
			if ok, _ := serves(v, postalCode); !ok {
				continue
			}
		}
		out = append(out, capacityOf(v, bookings, window))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Vehicle.Name < out[j].Vehicle.Name })

	return out
}
