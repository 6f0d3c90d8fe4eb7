package v1handler

import (
	"net/http"
	"time"

	"qcscargo/internal/booking"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/serrors"
)

// IdempotencyKeyHeader carries the client token that makes booking creation
// safe to retry.
const IdempotencyKeyHeader = "Idempotency-Key"

// BookingRequest is the body of POST /bookings.
type BookingRequest struct {
	Window   domain.TimeWindow `json:"window"`
	Pickup   domain.Address    `json:"pickup"`
	WeightKg float64           `json:"weightKg"`
	VolumeM3 float64           `json:"volumeM3"`
	Pieces   int               `json:"pieces"`
	Notes    string            `json:"notes"`
}

// CreateBooking books a pickup. A replay of an earlier request with the same
// Idempotency-Key answers 200 with the original booking instead of 201.
func (h Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	b, replayed, err := h.deps.Bookings.Create(r.Context(),
		mustPrincipal(r.Context()),
		r.Header.Get(IdempotencyKeyHeader),
		booking.Request{
			Window:   req.Window,
			Pickup:   req.Pickup,
			WeightKg: req.WeightKg,
			VolumeM3: req.VolumeM3,
			Pieces:   req.Pieces,
			Notes:    req.Notes,
		})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
		w.Header().Set("Idempotent-Replayed", "true")
	}
	h.writeJSON(w, r, status, b)
}

// ListBookings pages through the bookings of the caller, newest first.
func (h Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	bookings, next, err := h.deps.Bookings.List(r.Context(),
		mustPrincipal(r.Context()),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, newList(bookings, next))
}

// GetBooking returns a booking by ID.
func (h Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BookingID](r, "bookingID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	b, err := h.deps.Bookings.Get(r.Context(), mustPrincipal(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, b)
}

// CancelBooking cancels a confirmed booking.
func (h Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.BookingID](r, "bookingID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	b, err := h.deps.Bookings.Cancel(r.Context(), mustPrincipal(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, b)
}

// Availability reports which vehicles can take a load in a window.
func (h Handler) Availability(w http.ResponseWriter, r *http.Request) {
	start, err := queryTime(r, "start")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	end, err := queryTime(r, "end")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	weight, err := queryFloat(r, "weightKg")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	volume, err := queryFloat(r, "volumeM3")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	a, err := h.deps.Bookings.Availability(r.Context(), booking.AvailabilityRequest{
		Window:     domain.TimeWindow{Start: start, End: end},
		WeightKg:   weight,
		VolumeM3:   volume,
		PostalCode: r.URL.Query().Get("postalCode"),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, a)
}

// RoutePlan returns the pickup plan of ?day=YYYY-MM-DD.
func (h Handler) RoutePlan(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("day")
	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "day must be a YYYY-MM-DD date"))

		return
	}

	// noon UTC falls on the same calendar day in every warehouse time zone
	plan, err := h.deps.Bookings.RoutePlan(r.Context(), day.Add(12*time.Hour))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, r, http.StatusOK, plan)
}
