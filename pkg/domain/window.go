package domain

import "time"

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the window has a positive duration.
func (w TimeWindow) Valid() bool {
	return !w.Start.IsZero() && w.End.After(w.Start)
}

// Duration returns the length of the window, zero for invalid windows.
func (w TimeWindow) Duration() time.Duration {
	if !w.Valid() {
		return 0
	}

	return w.End.Sub(w.Start)
}

// Overlap returns the duration shared by w and other. Disjoint or touching
// windows overlap for zero.
func (w TimeWindow) Overlap(other TimeWindow) time.Duration {
	start := w.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := w.End
	if other.End.Before(end) {
		end = other.End
	}
	if !end.After(start) {
		return 0
	}

	return end.Sub(start)
}

// Overlaps reports whether the windows share any instant.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Overlap(other) > 0
}

// Day returns the window of the calendar day containing t in t's location.
func Day(t time.Time) TimeWindow {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())

	return TimeWindow{Start: start, End: start.AddDate(0, 0, 1)}
}
