package models

import "fmt"

// SeatZone — ценовая зона с местами, актуальна только для ticket_sales.
type SeatZone struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	SeatCount  int      `json:"seat_count"`
	Price      float64  `json:"price"`
	SeatLabels []string `json:"seat_labels"`
}

// GenerateSeatLabels rebuilds the full label list for a zone. Labels are
// always regenerated as a whole when the name or seat count changes, never
// patched incrementally.
func GenerateSeatLabels(name string, seatCount int) []string {
	labels := make([]string, 0, seatCount)
	for n := 1; n <= seatCount; n++ {
		labels = append(labels, fmt.Sprintf("%s-%d", name, n))
	}
	return labels
}
