package booking

import (
	"fmt"

	"milovat/models"
)

// Availability enumerates every whole hour in [openHour, closeHour) for the
// given date and flags it unavailable when a non-cancelled booking on that
// date covers it (start inclusive, end exclusive). Pure function of its
// inputs; callers recompute per request.
func Availability(openHour, closeHour int, date string, bookings []models.Booking) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		slots = append(slots, models.TimeSlot{
			Hour:      h,
			Start:     fmt.Sprintf("%02d:00", h),
			Available: !hourBooked(h, date, bookings),
		})
	}
	return slots
}

func hourBooked(h int, date string, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.Date != date || b.Status == models.BookingCancelled {
			continue
		}
		if h >= b.StartHour && h < b.EndHour {
			return true
		}
	}
	return false
}

// OverlapsAny reports whether a claim on [start, end) collides with a
// non-cancelled booking on the same date. Adjacent ranges (one ends where
// the other starts) do not collide.
func OverlapsAny(start, end int, date string, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.Date != date || b.Status == models.BookingCancelled {
			continue
		}
		if b.StartHour < end && b.EndHour > start {
			return true
		}
	}
	return false
}
