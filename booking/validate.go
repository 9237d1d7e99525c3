package booking

import (
	"fmt"
	"strings"
	"time"

	"milovat/amenities"
	"milovat/models"
)

// ReservationRequest is the payload a resident submits when claiming a slot.
type ReservationRequest struct {
	Date   string `json:"date"`
	Start  string `json:"start"` // "HH:00"
	End    string `json:"end"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	People int    `json:"people"`
}

// ValidateReservation enforces every submission rule before anything is
// written: both hours selected and ordered, inside the amenity's operating
// window, requester name and unit present, party size within capacity.
// Returns the parsed start and end hours on success.
func ValidateReservation(req ReservationRequest, amenity models.Amenity) (startHour, endHour int, err error) {
	open, close, err := amenities.ParseOperatingHours(amenity.Hours)
	if err != nil {
		return 0, 0, err
	}

	if strings.TrimSpace(req.Date) == "" {
		return 0, 0, fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return 0, 0, fmt.Errorf("date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(req.Start) == "" {
		return 0, 0, fmt.Errorf("start hour is required")
	}
	if strings.TrimSpace(req.End) == "" {
		return 0, 0, fmt.Errorf("end hour is required")
	}
	startHour, err = amenities.ParseHour(req.Start)
	if err != nil {
		return 0, 0, err
	}
	endHour, err = amenities.ParseHour(req.End)
	if err != nil {
		return 0, 0, err
	}
	if startHour >= endHour {
		return 0, 0, fmt.Errorf("start hour must be before end hour")
	}
	if startHour < open || endHour > close {
		return 0, 0, fmt.Errorf("requested hours outside operating window %s", amenity.Hours)
	}
	if strings.TrimSpace(req.Name) == "" {
		return 0, 0, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Unit) == "" {
		return 0, 0, fmt.Errorf("unit is required")
	}
	if req.People < 1 || req.People > amenity.Capacity {
		return 0, 0, fmt.Errorf("people must be between 1 and %d", amenity.Capacity)
	}
	return startHour, endHour, nil
}
