package documents

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"milovat/db"
	"milovat/globals"
	"milovat/models"
	"milovat/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const docDir = "static/docs"

// GET /api/documentos?category=
func GetDocuments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cur, err := db.DocumentsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer cur.Close(ctx)

	documents := []models.Document{}
	if err := cur.All(ctx, &documents); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"documents": documents})
}

// POST /api/documentos (admin, multipart fields "title", "category", "file")
func UploadDocument(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if err := utils.EnsureDir(docDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "storage error")
		return
	}

	doc := models.Document{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  strings.TrimSpace(r.FormValue("category")),
		CreatedAt: time.Now().Unix(),
	}
	doc.UploadedBy, _ = r.Context().Value(globals.UserIDKey).(string)
	doc.FileName = doc.ID + "_" + utils.SanitizeFilename(header.Filename)

	dst, err := os.Create(filepath.Join(docDir, doc.FileName))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "storage error")
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "storage error")
		return
	}
	doc.Size = size

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.DocumentsCollection.InsertOne(ctx, doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"document": doc})
}

// DELETE /api/documentos/:id (admin)
func DeleteDocument(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc models.Document
	if err := db.DocumentsCollection.FindOneAndDelete(ctx, bson.M{"id": ps.ByName("id")}).Decode(&doc); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "document not found")
		return
	}
	_ = os.Remove(filepath.Join(docDir, doc.FileName))

	w.WriteHeader(http.StatusNoContent)
}
