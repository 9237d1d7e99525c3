package amenities

import (
	"testing"

	"milovat/models"
)

func TestParseOperatingHours(t *testing.T) {
	open, close, err := ParseOperatingHours("08:00-22:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open != 8 || close != 22 {
		t.Fatalf("got %d-%d, want 8-22", open, close)
	}
}

func TestParseOperatingHoursMalformed(t *testing.T) {
	for _, s := range []string{"", "8am to 10pm", "08:00", "22:00-08:00", "08:30-22:00", "08:00-25:00"} {
		if _, _, err := ParseOperatingHours(s); err == nil {
			t.Errorf("ParseOperatingHours(%q) should fail", s)
		}
	}
}

func TestParseHour(t *testing.T) {
	h, err := ParseHour("09:00")
	if err != nil || h != 9 {
		t.Fatalf("got (%d, %v), want (9, nil)", h, err)
	}
	if _, err := ParseHour("09:15"); err == nil {
		t.Fatal("quarter hours are not bookable")
	}
}

func TestNewRegistryValidatesSeed(t *testing.T) {
	cases := []struct {
		name string
		seed []models.Amenity
	}{
		{"bad hours", []models.Amenity{{ID: "a", Hours: "nope", Capacity: 5}}},
		{"zero capacity", []models.Amenity{{ID: "a", Hours: "08:00-20:00", Capacity: 0}}},
		{"duplicate id", []models.Amenity{
			{ID: "a", Hours: "08:00-20:00", Capacity: 5},
			{ID: "a", Hours: "09:00-21:00", Capacity: 5},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRegistry(tc.seed); err == nil {
				t.Fatal("expected seed validation error")
			}
		})
	}
}

func TestCatalogSeed(t *testing.T) {
	salon, ok := Catalog.Get("salon-eventos")
	if !ok {
		t.Fatal("event hall missing from seed catalog")
	}
	if salon.Capacity != 50 || salon.Hours != "08:00-22:00" {
		t.Fatalf("unexpected event hall config: %+v", salon)
	}

	list := Catalog.List()
	if len(list) == 0 {
		t.Fatal("catalog should not be empty")
	}
	if list[0].ID != "salon-eventos" {
		t.Fatalf("catalog order not preserved, first is %s", list[0].ID)
	}

	if _, ok := Catalog.Get("helipuerto"); ok {
		t.Fatal("unknown amenity should not resolve")
	}
}
