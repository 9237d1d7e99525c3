package visits

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"milovat/db"
	"milovat/models"
	"milovat/mq"
	"milovat/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/visitas?unit=&date=&status=
func GetVisits(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if unit := r.URL.Query().Get("unit"); unit != "" {
		filter["unit"] = unit
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["date"] = date
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cur, err := db.VisitsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	visits := []models.Visit{}
	if err := cur.All(ctx, &visits); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"visits": visits})
}

// POST /api/visitas
func CreateVisit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var v models.Visit
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	v.Unit = strings.TrimSpace(v.Unit)
	v.VisitorName = strings.TrimSpace(v.VisitorName)
	if v.Unit == "" || v.VisitorName == "" || v.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "unit, visitorName and date are required")
		return
	}
	if _, err := time.Parse("2006-01-02", v.Date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	v.ID = uuid.NewString()
	v.Status = models.VisitExpected
	v.CreatedAt = time.Now().Unix()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.VisitsCollection.InsertOne(ctx, v); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	mq.Emit(r.Context(), "visit-created", models.Index{
		EntityType: "visit", Method: "POST", EntityId: v.ID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"visit": v})
}

// PATCH /api/visitas/:id/checkin
func CheckIn(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	transitionVisit(w, ps.ByName("id"), models.VisitInside, "entryTime")
}

// PATCH /api/visitas/:id/checkout
func CheckOut(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	transitionVisit(w, ps.ByName("id"), models.VisitLeft, "exitTime")
}

// visitFlow is the only legal status progression: expected → inside → left.
var visitFlow = map[string]string{
	models.VisitExpected: models.VisitInside,
	models.VisitInside:   models.VisitLeft,
}

// CanTransition reports whether a visit currently in from may move to to.
func CanTransition(from, to string) bool {
	return visitFlow[from] == to
}

func transitionVisit(w http.ResponseWriter, visitID, to, stampField string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var v models.Visit
	if err := db.VisitsCollection.FindOne(ctx, bson.M{"id": visitID}).Decode(&v); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "visit not found")
		return
	}
	if !CanTransition(v.Status, to) {
		utils.RespondWithError(w, http.StatusConflict, fmt.Sprintf("visit is %s, cannot move to %s", v.Status, to))
		return
	}

	// the status filter keeps the update atomic against a racing transition
	res := db.VisitsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": visitID, "status": v.Status},
		bson.M{"$set": bson.M{"status": to, stampField: time.Now().Unix()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Visit
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusConflict, "visit changed, retry")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "visit": updated})
}

func passSecret() []byte {
	if s := os.Getenv("PASS_HMAC_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("milovat-pass-secret")
}

// GeneratePassPayload returns "visitID|unit|date|signature" so the gate can
// verify a scanned pass offline.
func GeneratePassPayload(v models.Visit) string {
	data := fmt.Sprintf("%s|%s|%s", v.ID, v.Unit, v.Date)
	h := hmac.New(sha256.New, passSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/visitas/:id/pass
func PrintPass(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	visitID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var v models.Visit
	if err := db.VisitsCollection.FindOne(ctx, bson.M{"id": visitID}).Decode(&v); err != nil {
		http.Error(w, "visit not found", http.StatusNotFound)
		return
	}

	qrPNG, err := qrcode.Encode(GeneratePassPayload(v), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}
