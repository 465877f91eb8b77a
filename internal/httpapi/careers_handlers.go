package httpapi

import (
	"github.com/maxaizer/irreplaceable/internal/catalog"
	"net/http"
)

func ListCareers(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"careers": catalog.Careers()})
}

func GetCareer(w http.ResponseWriter, r *http.Request) {
	career, found := catalog.CareerByID(r.PathValue("id"))
	if !found {
		WriteError(w, r, http.StatusNotFound, "not_found", "career not found")
		return
	}
	WriteJSON(w, http.StatusOK, career)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
