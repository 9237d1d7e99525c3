package booking

import (
	"reflect"
	"testing"

	"milovat/models"
)

func TestAvailabilityEmptyWindow(t *testing.T) {
	slots := Availability(8, 22, "2025-06-01", nil)

	if len(slots) != 14 {
		t.Fatalf("expected 14 slots for 08:00-22:00, got %d", len(slots))
	}
	if slots[0].Start != "08:00" || slots[len(slots)-1].Start != "21:00" {
		t.Fatalf("window runs %s..%s, want 08:00..21:00", slots[0].Start, slots[len(slots)-1].Start)
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %s should be available with zero bookings", s.Start)
		}
	}
}

func TestAvailabilityMarksBookedHours(t *testing.T) {
	bookings := []models.Booking{
		{AmenityID: "salon-eventos", Date: "2025-06-01", StartHour: 10, EndHour: 12, Status: models.BookingConfirmed},
	}

	slots := Availability(8, 22, "2025-06-01", bookings)

	for _, s := range slots {
		switch s.Hour {
		case 10, 11:
			if s.Available {
				t.Errorf("hour %d is booked, got available", s.Hour)
			}
		case 12:
			// end hour is exclusive
			if !s.Available {
				t.Errorf("hour 12 should stay available")
			}
		default:
			if !s.Available {
				t.Errorf("hour %d should be available", s.Hour)
			}
		}
	}
}

func TestAvailabilityFullWindowBooking(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2025-06-01", StartHour: 8, EndHour: 22, Status: models.BookingConfirmed},
	}
	for _, s := range Availability(8, 22, "2025-06-01", bookings) {
		if s.Available {
			t.Fatalf("hour %d should be unavailable under a full-window booking", s.Hour)
		}
	}
}

func TestAvailabilityIgnoresOtherDatesAndCancelled(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2025-06-02", StartHour: 8, EndHour: 22, Status: models.BookingConfirmed},
		{Date: "2025-06-01", StartHour: 9, EndHour: 10, Status: models.BookingCancelled},
	}
	for _, s := range Availability(8, 22, "2025-06-01", bookings) {
		if !s.Available {
			t.Fatalf("hour %d should be available, bookings are other-date or cancelled", s.Hour)
		}
	}
}

func TestOverlapsAny(t *testing.T) {
	existing := []models.Booking{
		{Date: "2025-06-01", StartHour: 10, EndHour: 12, Status: models.BookingConfirmed},
	}

	cases := []struct {
		name       string
		start, end int
		date       string
		want       bool
	}{
		{"identical range", 10, 12, "2025-06-01", true},
		{"partial tail", 11, 13, "2025-06-01", true},
		{"partial head", 9, 11, "2025-06-01", true},
		{"containing", 9, 13, "2025-06-01", true},
		{"contained", 10, 11, "2025-06-01", true},
		{"adjacent before", 8, 10, "2025-06-01", false},
		{"adjacent after", 12, 14, "2025-06-01", false},
		{"other date", 10, 12, "2025-06-02", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverlapsAny(tc.start, tc.end, tc.date, existing); got != tc.want {
				t.Fatalf("OverlapsAny(%d, %d, %s) = %v, want %v", tc.start, tc.end, tc.date, got, tc.want)
			}
		})
	}
}

func TestOverlapsAnyIgnoresCancelled(t *testing.T) {
	existing := []models.Booking{
		{Date: "2025-06-01", StartHour: 10, EndHour: 12, Status: models.BookingCancelled},
	}
	if OverlapsAny(10, 12, "2025-06-01", existing) {
		t.Fatal("a cancelled booking must not block the slot")
	}
}

func TestAvailabilityIdempotent(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2025-06-01", StartHour: 14, EndHour: 16, Status: models.BookingConfirmed},
	}
	first := Availability(8, 22, "2025-06-01", bookings)
	second := Availability(8, 22, "2025-06-01", bookings)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs must yield identical slot sequences")
	}
}
