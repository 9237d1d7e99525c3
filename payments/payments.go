package payments

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

// GET /api/pagos?unit=&status=
func GetPayments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if unit := r.URL.Query().Get("unit"); unit != "" {
		filter["unit"] = unit
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cur, err := db.PaymentsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"payments": payments})
}

// POST /api/pagos
func CreatePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	p.Unit = strings.TrimSpace(p.Unit)
	p.Concept = strings.TrimSpace(p.Concept)
	if p.Unit == "" || p.Concept == "" || p.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "unit, concept and a positive amount are required")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	p.ID = utils.GenerateRandomDigitString(22)
	p.UserID = userID
	p.Status = "pending"
	p.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.PaymentsCollection.InsertOne(ctx, p); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	mq.Emit(r.Context(), "payment-created", models.Index{
		EntityType: "payment", Method: "POST", EntityId: p.ID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"payment": p})
}

// PATCH /api/pagos/:id/pay
func MarkPaid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	paymentID := ps.ByName("id")

	var body struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if body.Method == "" {
		body.Method = "transfer"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := db.PaymentsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": paymentID, "status": "pending"},
		bson.M{"$set": bson.M{
			"status": "paid",
			"method": body.Method,
			"paidAt": time.Now().Unix(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Payment
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "pending payment not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "payment": updated})
}
