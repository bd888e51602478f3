package domain

import "time"

// Period is the pickup/return window of a reservation or rental. It is a
// value object: built once, never mutated.
type Period struct {
	PickupAt time.Time `json:"pickup_at"`
	ReturnAt time.Time `json:"return_at"`
}

func NewPeriod(pickupAt, returnAt time.Time) (Period, error) {
	if returnAt.Before(pickupAt) {
		return Period{}, ErrInvalidRange
	}
	return Period{PickupAt: pickupAt, ReturnAt: returnAt}, nil
}

// DurationDays converts the window to whole billing days. The window is
// measured in whole hours, any started day counts as a full day, and even
// a zero-length window bills one day.
func (p Period) DurationDays() int {
	hours := int(p.ReturnAt.Sub(p.PickupAt).Hours())
	days := hours / 24
	if hours%24 != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// Overlaps reports whether the two windows share at least one instant.
// Boundaries touching count as overlapping: a vehicle returned at 10:00
// cannot be picked up by someone else at 10:00 sharp.
func (p Period) Overlaps(other Period) bool {
	return !p.ReturnAt.Before(other.PickupAt) && !other.ReturnAt.Before(p.PickupAt)
}
