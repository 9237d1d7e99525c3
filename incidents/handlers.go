package incidents

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"milovat/models"
	"milovat/mq"
	"milovat/utils"

	"github.com/julienschmidt/httprouter"
)

var store = NewStore()

// missingFields mirrors the schema the frontend validates against: every
// field is a required non-empty string.
func missingFields(inc models.Incident) []string {
	var fields []string
	if strings.TrimSpace(inc.Titulo) == "" {
		fields = append(fields, "titulo")
	}
	if strings.TrimSpace(inc.Descripcion) == "" {
		fields = append(fields, "descripcion")
	}
	if strings.TrimSpace(inc.Fecha) == "" {
		fields = append(fields, "fecha")
	}
	if strings.TrimSpace(inc.Estado) == "" {
		fields = append(fields, "estado")
	}
	if strings.TrimSpace(inc.Departamento) == "" {
		fields = append(fields, "departamento")
	}
	return fields
}

func validEstado(estado string) bool {
	switch estado {
	case models.IncidentOpen, models.IncidentInProgress, models.IncidentResolved:
		return true
	}
	return false
}

// GET /api/incidencias
func GetIncidents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, store.List())
}

// GET /api/incidencias/:id
func GetIncident(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}
	inc, ok := store.Get(id)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "incidencia not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inc)
}

// POST /api/incidencias
func CreateIncident(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inc models.Incident
	if err := json.NewDecoder(r.Body).Decode(&inc); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if fields := missingFields(inc); len(fields) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}
	if !validEstado(inc.Estado) {
		utils.RespondWithError(w, http.StatusBadRequest, "estado must be abierta, en_progreso or resuelta")
		return
	}

	created := store.Create(inc)

	mq.Emit(context.Background(), "incident-created", models.Index{
		EntityType: "incident", Method: "POST",
		EntityId: strconv.Itoa(created.ID),
	})

	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/incidencias/:id
func PatchIncident(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var patch IncidentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if patch.Estado != nil && !validEstado(*patch.Estado) {
		utils.RespondWithError(w, http.StatusBadRequest, "estado must be abierta, en_progreso or resuelta")
		return
	}

	updated, ok := store.Patch(id, patch)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "incidencia not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
