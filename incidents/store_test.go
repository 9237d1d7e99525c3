package incidents

import (
	"testing"

	"milovat/models"
)

func sample() models.Incident {
	return models.Incident{
		Titulo:       "Fuga de agua",
		Descripcion:  "Fuga en el pasillo del tercer piso",
		Fecha:        "2025-06-01",
		Estado:       models.IncidentOpen,
		Departamento: "mantenimiento",
	}
}

func TestStoreCreateAssignsIncreasingIDs(t *testing.T) {
	s := NewStore()

	first := s.Create(sample())
	second := s.Create(sample())

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids %d, %d; want 1, 2", first.ID, second.ID)
	}

	list := s.List()
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("list not ordered by id: %+v", list)
	}
}

func TestStoreGet(t *testing.T) {
	s := NewStore()
	created := s.Create(sample())

	got, ok := s.Get(created.ID)
	if !ok || got.Titulo != "Fuga de agua" {
		t.Fatalf("Get(%d) = (%+v, %v)", created.ID, got, ok)
	}
	if _, ok := s.Get(999); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestStorePatchMergesOnlyProvidedFields(t *testing.T) {
	s := NewStore()
	created := s.Create(sample())

	estado := models.IncidentInProgress
	updated, ok := s.Patch(created.ID, IncidentPatch{Estado: &estado})
	if !ok {
		t.Fatal("patch of existing incident failed")
	}
	if updated.Estado != models.IncidentInProgress {
		t.Fatalf("estado = %s, want %s", updated.Estado, models.IncidentInProgress)
	}
	if updated.Titulo != created.Titulo || updated.Departamento != created.Departamento {
		t.Fatal("patch must not clear fields it does not name")
	}
}

func TestStorePatchUnknownID(t *testing.T) {
	s := NewStore()
	if _, ok := s.Patch(42, IncidentPatch{}); ok {
		t.Fatal("patching an unknown id must fail")
	}
}
