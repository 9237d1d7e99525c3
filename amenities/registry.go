package amenities

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"milovat/models"
)

// Registry holds the building's amenity catalog. It is seeded once at
// startup and amenities are never removed in-session; only their booking
// lists (stored elsewhere) grow.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]models.Amenity
	order []string
}

func NewRegistry(seed []models.Amenity) (*Registry, error) {
	reg := &Registry{byID: make(map[string]models.Amenity)}
	for _, a := range seed {
		if _, _, err := ParseOperatingHours(a.Hours); err != nil {
			return nil, fmt.Errorf("amenity %s: %w", a.ID, err)
		}
		if a.Capacity < 1 {
			return nil, fmt.Errorf("amenity %s: capacity must be at least 1", a.ID)
		}
		if _, dup := reg.byID[a.ID]; dup {
			return nil, fmt.Errorf("amenity %s: duplicate id", a.ID)
		}
		reg.byID[a.ID] = a
		reg.order = append(reg.order, a.ID)
	}
	return reg, nil
}

func (reg *Registry) List() []models.Amenity {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]models.Amenity, 0, len(reg.order))
	for _, id := range reg.order {
		out = append(out, reg.byID[id])
	}
	return out
}

func (reg *Registry) Get(id string) (models.Amenity, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	a, ok := reg.byID[id]
	return a, ok
}

// ParseOperatingHours parses "HH:MM-HH:MM" into whole open/close hours.
// Malformed input is an error rather than an empty window.
func ParseOperatingHours(s string) (open, close int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("operating hours %q: want \"HH:MM-HH:MM\"", s)
	}
	open, err = parseHour(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("operating hours %q: %w", s, err)
	}
	close, err = parseHour(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("operating hours %q: %w", s, err)
	}
	if close <= open {
		return 0, 0, fmt.Errorf("operating hours %q: close must be after open", s)
	}
	return open, close, nil
}

// ParseHour accepts "HH:00" or "HH" and returns the hour.
func ParseHour(s string) (int, error) {
	return parseHour(s)
}

func parseHour(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ":"); i >= 0 {
		if s[i+1:] != "00" {
			return 0, fmt.Errorf("time %q not aligned to the hour", s)
		}
		s = s[:i]
	}
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("invalid hour %q", s)
	}
	return h, nil
}

// Catalog is the static amenity list the application starts with.
var Catalog *Registry

func init() {
	seed := []models.Amenity{
		{ID: "salon-eventos", Name: "Salón de eventos", Description: "Salón principal para celebraciones y reuniones", Hours: "08:00-22:00", Capacity: 50},
		{ID: "gimnasio", Name: "Gimnasio", Description: "Gimnasio equipado en el primer piso", Hours: "06:00-23:00", Capacity: 15},
		{ID: "piscina", Name: "Piscina", Description: "Piscina climatizada de la terraza", Hours: "09:00-20:00", Capacity: 25},
		{ID: "parrilla", Name: "Zona de parrillas", Description: "Parrillas de la azotea", Hours: "10:00-22:00", Capacity: 20},
		{ID: "coworking", Name: "Sala coworking", Description: "Sala de trabajo compartido con wifi", Hours: "07:00-21:00", Capacity: 12},
	}
	var err error
	Catalog, err = NewRegistry(seed)
	if err != nil {
		log.Fatalf("amenity catalog: %v", err)
	}
}
