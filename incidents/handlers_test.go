package incidents

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"milovat/models"

	"github.com/julienschmidt/httprouter"
)

func newTestRouter() *httprouter.Router {
	router := httprouter.New()
	router.GET("/api/incidencias", GetIncidents)
	router.GET("/api/incidencias/:id", GetIncident)
	router.POST("/api/incidencias", CreateIncident)
	router.PATCH("/api/incidencias/:id", PatchIncident)
	return router
}

func TestCreateIncidentMissingTitulo(t *testing.T) {
	router := newTestRouter()
	before := len(store.List())

	body := `{"descripcion":"Ascensor detenido","fecha":"2025-06-01","estado":"abierta","departamento":"mantenimiento"}`
	req := httptest.NewRequest(http.MethodPost, "/api/incidencias", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Fields) != 1 || resp.Fields[0] != "titulo" {
		t.Fatalf("fields = %v, want [titulo]", resp.Fields)
	}

	if got := len(store.List()); got != before {
		t.Fatalf("store mutated on validation failure: %d -> %d", before, got)
	}
}

func TestCreateIncidentListsAllMissingFields(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/incidencias", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Fields []string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Fields) != 5 {
		t.Fatalf("fields = %v, want all five schema fields", resp.Fields)
	}
}

func TestCreateIncidentRejectsUnknownEstado(t *testing.T) {
	router := newTestRouter()

	body := `{"titulo":"x","descripcion":"y","fecha":"2025-06-01","estado":"archivada","departamento":"z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/incidencias", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateThenFetchIncident(t *testing.T) {
	router := newTestRouter()

	body := `{"titulo":"Ruido nocturno","descripcion":"Música alta en el 5A","fecha":"2025-06-02","estado":"abierta","departamento":"administracion"}`
	req := httptest.NewRequest(http.MethodPost, "/api/incidencias", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var created models.Incident
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created incident has no id")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/incidencias/"+strconv.Itoa(created.ID), nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", getRec.Code)
	}
	var fetched models.Incident
	if err := json.Unmarshal(getRec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if fetched.Titulo != "Ruido nocturno" {
		t.Fatalf("fetched wrong incident: %+v", fetched)
	}
}

func TestPatchUnknownIncidentReturns404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/incidencias/99999", strings.NewReader(`{"estado":"resuelta"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPatchIncidentPartialUpdate(t *testing.T) {
	router := newTestRouter()

	created := store.Create(models.Incident{
		Titulo: "Portón averiado", Descripcion: "No cierra", Fecha: "2025-06-03",
		Estado: models.IncidentOpen, Departamento: "seguridad",
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/incidencias/"+strconv.Itoa(created.ID),
		strings.NewReader(`{"estado":"en_progreso"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var updated models.Incident
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if updated.Estado != models.IncidentInProgress {
		t.Fatalf("estado = %s, want en_progreso", updated.Estado)
	}
	if updated.Titulo != "Portón averiado" {
		t.Fatal("patch cleared a field it did not name")
	}
}

func TestGetUnknownIncidentReturns404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/incidencias/424242", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
