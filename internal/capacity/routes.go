package capacity

import (
	"sort"
	"time"

	"qcscargo/pkg/domain"
)

// Cluster is a group of bookings sharing a postal code prefix.
type Cluster struct {
	Key      string           `json:"key"`
	Start    time.Time        `json:"start"`
	Load     Load             `json:"load"`
	Bookings []domain.Booking `json:"bookings"`
}

// Stop is a pickup on a vehicle route.
type Stop struct {
	Sequence int            `json:"sequence"`
	Cluster  string         `json:"cluster"`
	Booking  domain.Booking `json:"booking"`
}

// Route is the ordered list of pickups of one vehicle.
type Route struct {
	Vehicle domain.Vehicle `json:"vehicle"`
	Load    Load           `json:"load"`
	Stops   []Stop         `json:"stops"`
}

func clusterKey(postalCode string, prefixLen int) string {
	code := NormalizePostalCode(postalCode)
	if prefixLen > 0 && len(code) > prefixLen {
		return code[:prefixLen]
	}

	return code
}

func byWindowStart(bookings []domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].Window.Start.Equal(bookings[j].Window.Start) {
			return bookings[i].Window.Start.Before(bookings[j].Window.Start)
		}

		return bookings[i].Reference < bookings[j].Reference
	})
}

// ClusterRoutes groups non-cancelled bookings by the first prefixLen
// characters of their pickup postal code. Clusters are ordered by their
// earliest window start and bookings inside a cluster by window start.
func ClusterRoutes(bookings []domain.Booking, prefixLen int) []Cluster {
	index := map[string]int{}
	var clusters []Cluster
	for _, b := range bookings {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		key := clusterKey(b.Pickup.PostalCode, prefixLen)
		i, ok := index[key]
		if !ok {
			i = len(clusters)
			index[key] = i
			clusters = append(clusters, Cluster{Key: key, Start: b.Window.Start})
		}
		c := &clusters[i]
		c.Bookings = append(c.Bookings, b)
		c.Load = c.Load.add(Load{WeightKg: b.WeightKg, VolumeM3: b.VolumeM3})
		if b.Window.Start.Before(c.Start) {
			c.Start = b.Window.Start
		}
	}

	for i := range clusters {
		byWindowStart(clusters[i].Bookings)
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		if !clusters[i].Start.Equal(clusters[j].Start) {
			return clusters[i].Start.Before(clusters[j].Start)
		}

		return clusters[i].Key < clusters[j].Key
	})

	return clusters
}

// PlanRoutes turns clusters into one route per booked vehicle. Stops keep
// the cluster order. Bookings on vehicles missing from vehicles still get a
// route carrying only the vehicle id. Routes are ordered by vehicle name.
func PlanRoutes(vehicles []domain.Vehicle, clusters []Cluster) []Route {
	known := make(map[domain.VehicleID]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		known[v.ID] = v
	}

	index := map[domain.VehicleID]int{}
	var routes []Route
	for _, c := range clusters {
		for _, b := range c.Bookings {
			i, ok := index[b.VehicleID]
			if !ok {
				v, found := known[b.VehicleID]
				if !found {
					v = domain.Vehicle{ID: b.VehicleID}
				}
				i = len(routes)
				index[b.VehicleID] = i
				routes = append(routes, Route{Vehicle: v})
			}
			r := &routes[i]
			r.Stops = append(r.Stops, Stop{Sequence: len(r.Stops) + 1, Cluster: c.Key, Booking: b})
			r.Load = r.Load.add(Load{WeightKg: b.WeightKg, VolumeM3: b.VolumeM3})
		}
	}
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Vehicle.Name != routes[j].Vehicle.Name {
			return routes[i].Vehicle.Name < routes[j].Vehicle.Name
		}

		return routes[i].Vehicle.ID.String() < routes[j].Vehicle.ID.String()
	})

	return routes
}
