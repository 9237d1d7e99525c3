package announcements

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

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/anuncios?category=&pinned=
func GetAnnouncements(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}
	if pinned := r.URL.Query().Get("pinned"); pinned != "" {
		filter["pinned"] = pinned == "true"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "pinned", Value: -1}, {Key: "createdAt", Value: -1}})
	cur, err := db.AnnouncementsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	announcements := []models.Announcement{}
	if err := cur.All(ctx, &announcements); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"announcements": announcements})
}

// POST /api/anuncios (admin)
func CreateAnnouncement(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var a models.Announcement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	a.Title = strings.TrimSpace(a.Title)
	a.Body = strings.TrimSpace(a.Body)
	if a.Title == "" || a.Body == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title and body are required")
		return
	}

	authorID, _ := r.Context().Value(globals.UserIDKey).(string)
	a.ID = uuid.NewString()
	a.AuthorID = authorID
	a.CreatedAt = time.Now().Unix()
	a.UpdatedAt = a.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.AnnouncementsCollection.InsertOne(ctx, a); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	mq.Emit(r.Context(), "announcement-created", models.Index{
		EntityType: "announcement", Method: "POST", EntityId: a.ID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"announcement": a})
}

// announcementPatch carries a partial update; nil fields are left untouched,
// so a title-only PUT cannot silently unpin an announcement.
type announcementPatch struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Category *string `json:"category"`
	Pinned   *bool   `json:"pinned"`
}

func buildAnnouncementUpdate(p announcementPatch, now int64) bson.M {
	update := bson.M{"updatedAt": now}
	if p.Title != nil {
		update["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Body != nil {
		update["body"] = strings.TrimSpace(*p.Body)
	}
	if p.Category != nil {
		update["category"] = *p.Category
	}
	if p.Pinned != nil {
		update["pinned"] = *p.Pinned
	}
	return update
}

// PUT /api/anuncios/:id (admin)
func UpdateAnnouncement(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch announcementPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	update := buildAnnouncementUpdate(patch, time.Now().Unix())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := db.AnnouncementsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": ps.ByName("id")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Announcement
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "announcement not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "announcement": updated})
}

// DELETE /api/anuncios/:id (admin)
func DeleteAnnouncement(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.AnnouncementsCollection.DeleteOne(ctx, bson.M{"id": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "announcement not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
