package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"milovat/db"
	"milovat/models"
	"milovat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/proveedores?service=&active=
func GetProviders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if service := r.URL.Query().Get("service"); service != "" {
		filter["service"] = service
	}
	if active := r.URL.Query().Get("active"); active != "" {
		filter["active"] = active == "true"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cur, err := db.ProvidersCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	providers := []models.Provider{}
	if err := cur.All(ctx, &providers); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"providers": providers})
}

// GET /api/proveedores/:id
func GetProvider(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var p models.Provider
	if err := db.ProvidersCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "provider not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"provider": p})
}

// POST /api/proveedores (admin)
func CreateProvider(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.Provider
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Service = strings.TrimSpace(p.Service)
	if p.Name == "" || p.Service == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name and service are required")
		return
	}

	p.ID = utils.GenerateRandomDigitString(22)
	p.Active = true
	p.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ProvidersCollection.InsertOne(ctx, p); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"provider": p})
}

// providerPatch carries a partial update; nil fields are left untouched, so
// omitting active does not silently deactivate a provider.
type providerPatch struct {
	Name    *string `json:"name"`
	Service *string `json:"service"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Active  *bool   `json:"active"`
}

func buildProviderUpdate(p providerPatch) bson.M {
	update := bson.M{}
	if p.Name != nil {
		update["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Service != nil {
		update["service"] = strings.TrimSpace(*p.Service)
	}
	if p.Phone != nil {
		update["phone"] = *p.Phone
	}
	if p.Email != nil {
		update["email"] = *p.Email
	}
	if p.Active != nil {
		update["active"] = *p.Active
	}
	return update
}

// PUT /api/proveedores/:id (admin)
func UpdateProvider(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch providerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	update := buildProviderUpdate(patch)
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := db.ProvidersCollection.FindOneAndUpdate(ctx,
		bson.M{"id": ps.ByName("id")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Provider
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "provider not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "provider": updated})
}

// DELETE /api/proveedores/:id (admin)
func DeleteProvider(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.ProvidersCollection.DeleteOne(ctx, bson.M{"id": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "provider not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
