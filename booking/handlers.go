package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"milovat/amenities"
	"milovat/db"
	"milovat/globals"
	"milovat/models"
	"milovat/mq"
	"milovat/rdx"
	"milovat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const availabilityTTL = 30 * time.Second

func genID() string {
	return utils.GenerateRandomDigitString(22)
}

func availabilityCacheKey(amenityID, date string) string {
	return fmt.Sprintf("avail:%s:%s", amenityID, date)
}

// GET /api/amenities/:id/availability?date=YYYY-MM-DD
func GetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	amenityID := ps.ByName("id")
	amenity, ok := amenities.Catalog.Get(amenityID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "amenity not found")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	open, close, err := amenities.ParseOperatingHours(amenity.Hours)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "amenity misconfigured")
		return
	}

	cacheKey := availabilityCacheKey(amenityID, date)
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		var slots []models.TimeSlot
		if json.Unmarshal([]byte(cached), &slots) == nil {
			utils.RespondWithJSON(w, http.StatusOK, map[string]any{
				"amenity": amenityID, "date": date, "slots": slots,
			})
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cur, err := db.BookingsCollection.Find(ctx, bson.M{
		"amenityId": amenityID,
		"date":      date,
		"status":    bson.M{"$ne": models.BookingCancelled},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	slots := Availability(open, close, date, bookings)

	if data, err := json.Marshal(slots); err == nil {
		_ = rdx.SetWithExpiry(cacheKey, string(data), availabilityTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"amenity": amenityID, "date": date, "slots": slots,
	})
}

// POST /api/amenities/:id/bookings
func CreateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	amenityID := ps.ByName("id")
	amenity, ok := amenities.Catalog.Get(amenityID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "amenity not found")
		return
	}

	var req ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	startHour, endHour, err := ValidateReservation(req, amenity)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Reject overlapping claims on the same amenity, date and hour range.
	// Two sessions racing for one slot was undetected upstream; here the
	// store is authoritative, so the conflict is surfaced as 409.
	cur, err := db.BookingsCollection.Find(ctx, bson.M{
		"amenityId": amenityID,
		"date":      req.Date,
		"status":    bson.M{"$ne": models.BookingCancelled},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	var existing []models.Booking
	if err := cur.All(ctx, &existing); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if OverlapsAny(startHour, endHour, req.Date, existing) {
		utils.RespondWithError(w, http.StatusConflict, "slot already booked")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	b := models.Booking{
		ID:        genID(),
		AmenityID: amenityID,
		Date:      req.Date,
		StartHour: startHour,
		EndHour:   endHour,
		Unit:      req.Unit,
		Name:      req.Name,
		People:    req.People,
		UserID:    userID,
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now().Unix(),
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, b); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	// stale entries expire within the TTL even if the delete fails
	_ = rdx.RdxDel(availabilityCacheKey(amenityID, req.Date))

	mq.Emit(r.Context(), "booking-created", models.Index{
		EntityType: "amenity", EntityId: amenityID,
		Method: "POST", ItemType: "booking", ItemId: b.ID,
	})
	broadcastUpdate("amenity_" + amenityID)

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "booking": b})
}

// GET /api/amenities/:id/bookings?date=&status=&unit=
func ListBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	amenityID := ps.ByName("id")
	if _, ok := amenities.Catalog.Get(amenityID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "amenity not found")
		return
	}

	filter := bson.M{"amenityId": amenityID}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["date"] = date
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if unit := r.URL.Query().Get("unit"); unit != "" {
		filter["unit"] = unit
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cur, err := db.BookingsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	bookings := []models.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// PATCH /api/bookings/:id/status
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	switch body.Status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCancelled:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": bookingID},
		bson.M{"$set": bson.M{"status": body.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "booking not found")
		return
	}

	_ = rdx.RdxDel(availabilityCacheKey(updated.AmenityID, updated.Date))
	broadcastUpdate("amenity_" + updated.AmenityID)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "booking": updated})
}
