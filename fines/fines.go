package fines

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"milovat/db"
	"milovat/globals"
	"milovat/models"
	"milovat/mq"
	"milovat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/multas?unit=&status=
func GetFines(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if unit := r.URL.Query().Get("unit"); unit != "" {
		filter["unit"] = unit
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cur, err := db.FinesCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	fines := []models.Fine{}
	if err := cur.All(ctx, &fines); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"fines": fines})
}

// POST /api/multas (admin)
func CreateFine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var fine models.Fine
	if err := json.NewDecoder(r.Body).Decode(&fine); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	fine.Unit = strings.TrimSpace(fine.Unit)
	fine.Reason = strings.TrimSpace(fine.Reason)
	if fine.Unit == "" || fine.Reason == "" || fine.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "unit, reason and a positive amount are required")
		return
	}

	issuedBy, _ := r.Context().Value(globals.UserIDKey).(string)
	fine.ID = utils.GenerateRandomDigitString(22)
	fine.Status = models.FinePending
	fine.IssuedBy = issuedBy
	fine.CreatedAt = time.Now().Unix()
	fine.UpdatedAt = fine.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.FinesCollection.InsertOne(ctx, fine); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	mq.Emit(r.Context(), "fine-created", models.Index{
		EntityType: "fine", Method: "POST", EntityId: fine.ID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"fine": fine})
}

// PATCH /api/multas/:id
func UpdateFineStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	fineID := ps.ByName("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	switch body.Status {
	case models.FinePending, models.FinePaid, models.FineAppealed:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := db.FinesCollection.FindOneAndUpdate(ctx,
		bson.M{"id": fineID},
		bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now().Unix()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Fine
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "fine not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "fine": updated})
}
