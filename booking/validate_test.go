package booking

import (
	"strings"
	"testing"

	"milovat/models"
)

var salon = models.Amenity{
	ID: "salon-eventos", Name: "Salón de eventos",
	Hours: "08:00-22:00", Capacity: 50,
}

func validReq() ReservationRequest {
	return ReservationRequest{
		Date:   "2025-06-01",
		Start:  "10:00",
		End:    "12:00",
		Name:   "Ana Pérez",
		Unit:   "4B",
		People: 10,
	}
}

func TestValidateReservationOK(t *testing.T) {
	start, end, err := ValidateReservation(validReq(), salon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != 10 || end != 12 {
		t.Fatalf("parsed %d-%d, want 10-12", start, end)
	}
}

func TestValidateReservationRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ReservationRequest)
		wantErr string
	}{
		{"missing start", func(r *ReservationRequest) { r.Start = "" }, "start hour is required"},
		{"missing end", func(r *ReservationRequest) { r.End = "" }, "end hour is required"},
		{"empty name", func(r *ReservationRequest) { r.Name = "   " }, "name is required"},
		{"empty unit", func(r *ReservationRequest) { r.Unit = "" }, "unit is required"},
		{"zero people", func(r *ReservationRequest) { r.People = 0 }, "people must be between 1 and 50"},
		{"over capacity", func(r *ReservationRequest) { r.People = 51 }, "people must be between 1 and 50"},
		{"inverted range", func(r *ReservationRequest) { r.Start = "12:00"; r.End = "10:00" }, "start hour must be before end hour"},
		{"before opening", func(r *ReservationRequest) { r.Start = "07:00" }, "outside operating window"},
		{"past closing", func(r *ReservationRequest) { r.End = "23:00" }, "outside operating window"},
		{"bad date", func(r *ReservationRequest) { r.Date = "01/06/2025" }, "date must be YYYY-MM-DD"},
		{"half hour", func(r *ReservationRequest) { r.Start = "10:30" }, "not aligned"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validReq()
			tc.mutate(&req)
			_, _, err := ValidateReservation(req, salon)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReservationBoundaryPeople(t *testing.T) {
	for _, people := range []int{1, 50} {
		req := validReq()
		req.People = people
		if _, _, err := ValidateReservation(req, salon); err != nil {
			t.Fatalf("people=%d should pass: %v", people, err)
		}
	}
}

func TestValidateReservationMalformedAmenityHours(t *testing.T) {
	broken := salon
	broken.Hours = "whenever"
	if _, _, err := ValidateReservation(validReq(), broken); err == nil {
		t.Fatal("malformed operating hours must be reported, not ignored")
	}
}
