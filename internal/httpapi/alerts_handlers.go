package httpapi

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"net/http"
	"strconv"
)

type AlertsHandler struct {
	Alerts AlertManager
}

func (h AlertsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var alert models.JobAlert
	if err := decodeJSON(w, r, &alert); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	created, err := h.Alerts.Create(r.Context(), alert)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (h AlertsHandler) List(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.Alerts.ListByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if alerts == nil {
		alerts = []models.JobAlert{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

func (h AlertsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		badRequest(w, r, "invalid alert id")
		return
	}

	if err = h.Alerts.Delete(r.Context(), id, r.URL.Query().Get("email")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
