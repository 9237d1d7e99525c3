package announcements

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"milovat/db"
	"milovat/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const bannerDir = "static/announcementpic"

// POST /api/anuncios/:id/banner (admin, multipart field "banner")
func UploadBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	announcementID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.AnnouncementsCollection.CountDocuments(ctx, bson.M{"id": announcementID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}
	if count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "announcement not found")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("banner")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "banner file is required")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "unsupported image")
		return
	}

	if err := utils.EnsureDir(bannerDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "storage error")
		return
	}

	name := announcementID + "_" + utils.SanitizeFilename(header.Filename)
	name = name[:len(name)-len(filepath.Ext(name))] + ".jpg"
	fullPath := filepath.Join(bannerDir, name)

	resized := imaging.Resize(img, 1200, 0, imaging.Lanczos)
	if err := imaging.Save(resized, fullPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to save banner")
		return
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	_ = imaging.Save(thumb, filepath.Join(bannerDir, "thumb_"+name))

	banner := fmt.Sprintf("/%s/%s", bannerDir, name)
	if _, err := db.AnnouncementsCollection.UpdateOne(ctx,
		bson.M{"id": announcementID},
		bson.M{"$set": bson.M{"banner": banner, "updatedAt": time.Now().Unix()}},
	); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "db error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "banner": banner})
}
