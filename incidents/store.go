package incidents

import (
	"sort"
	"sync"

	"milovat/models"
)

// Store keeps incidents in memory for the life of the process, keyed by an
// auto-incrementing integer id. There is deliberately no persistence here.
type Store struct {
	mu     sync.Mutex
	items  map[int]models.Incident
	nextID int
}

func NewStore() *Store {
	return &Store{items: make(map[int]models.Incident), nextID: 1}
}

func (s *Store) List() []models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Incident, 0, len(s.items))
	for _, inc := range s.items {
		out = append(out, inc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id int) (models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inc, ok := s.items[id]
	return inc, ok
}

func (s *Store) Create(inc models.Incident) models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	inc.ID = s.nextID
	s.nextID++
	s.items[inc.ID] = inc
	return inc
}

// IncidentPatch carries a partial update; nil fields are left untouched.
type IncidentPatch struct {
	Titulo       *string `json:"titulo"`
	Descripcion  *string `json:"descripcion"`
	Fecha        *string `json:"fecha"`
	Estado       *string `json:"estado"`
	Departamento *string `json:"departamento"`
}

func (s *Store) Patch(id int, patch IncidentPatch) (models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inc, ok := s.items[id]
	if !ok {
		return models.Incident{}, false
	}
	if patch.Titulo != nil {
		inc.Titulo = *patch.Titulo
	}
	if patch.Descripcion != nil {
		inc.Descripcion = *patch.Descripcion
	}
	if patch.Fecha != nil {
		inc.Fecha = *patch.Fecha
	}
	if patch.Estado != nil {
		inc.Estado = *patch.Estado
	}
	if patch.Departamento != nil {
		inc.Departamento = *patch.Departamento
	}
	s.items[id] = inc
	return inc, true
}
