package amenities

import (
	"net/http"

	"milovat/utils"

	"github.com/julienschmidt/httprouter"
)

func GetAmenities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"amenities": Catalog.List()})
}

func GetAmenity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	amenity, ok := Catalog.Get(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "amenity not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"amenity": amenity})
}
