package capacity_test

import (
	"testing"

	"qcscargo/internal/capacity"
	"qcscargo/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestClusterRoutes(t *testing.T) {
	v := vehicle("van", 1000, 10)
	late := booking(v, window(14, 16), 10, 0.1, "33139")
	early := booking(v, window(8, 10), 20, 0.2, "33101")
	orlando := booking(v, window(11, 13), 30, 0.3, "32801")
	cancelled := booking(v, window(7, 8), 40, 0.4, "30301")
	cancelled.Status = domain.BookingStatusCancelled

	clusters := capacity.ClusterRoutes([]domain.Booking{late, orlando, cancelled, early}, 3)
	require.Len(t, clusters, 2)

	require.Equal(t, "331", clusters[0].Key)
	require.Equal(t, early.Window.Start, clusters[0].Start)
	require.Equal(t, []domain.Booking{early, late}, clusters[0].Bookings)
	require.InDelta(t, 30, clusters[0].Load.WeightKg, 1e-9)

	require.Equal(t, "328", clusters[1].Key)
	require.Equal(t, []domain.Booking{orlando}, clusters[1].Bookings)
}

func TestClusterRoutes_ShortPostalCode(t *testing.T) {
	v := vehicle("van", 1000, 10)
	clusters := capacity.ClusterRoutes([]domain.Booking{booking(v, window(8, 9), 1, 0, "12")}, 3)
	require.Len(t, clusters, 1)
	require.Equal(t, "12", clusters[0].Key)
}

func TestPlanRoutes(t *testing.T) {
	van := vehicle("van", 1000, 10)
	truck := vehicle("truck", 5000, 40)
	ghost := domain.VehicleID(uuid.New())

	b1 := booking(van, window(8, 10), 20, 0.2, "33101")
	b2 := booking(truck, window(9, 10), 200, 2, "33130")
	b3 := booking(van, window(11, 12), 30, 0.3, "32801")
	b4 := booking(van, window(12, 13), 10, 0.1, "32805")
	b5 := booking(van, window(13, 14), 5, 0, "32806")
	b5.VehicleID = ghost

	routes := capacity.PlanRoutes(
		[]domain.Vehicle{van, truck},
		capacity.ClusterRoutes([]domain.Booking{b4, b3, b2, b1, b5}, 3),
	)
	require.Len(t, routes, 3)

	// the unknown vehicle has an empty name and sorts first
	require.Equal(t, ghost, routes[0].Vehicle.ID)
	require.Len(t, routes[0].Stops, 1)

	require.Equal(t, "truck", routes[1].Vehicle.Name)
	require.Len(t, routes[1].Stops, 1)
	require.Equal(t, "331", routes[1].Stops[0].Cluster)

	require.Equal(t, "van", routes[2].Vehicle.Name)
	require.Len(t, routes[2].Stops, 3)
	for i, want := range []domain.Booking{b1, b3, b4} {
		require.Equal(t, i+1, routes[2].Stops[i].Sequence)
		require.Equal(t, want.ID, routes[2].Stops[i].Booking.ID)
	}
	require.InDelta(t, 60, routes[2].Load.WeightKg, 1e-9)
}
