package httpapi

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"net/http"
)

type ContactHandler struct {
	Contact ContactSubmitter
}

func (h ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var message models.ContactMessage
	if err := decodeJSON(w, r, &message); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	saved, err := h.Contact.Submit(r.Context(), message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"id": saved.ID, "createdAt": saved.CreatedAt})
}
