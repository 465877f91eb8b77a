package httpapi

import (
	"encoding/json"
	"errors"
	"github.com/maxaizer/irreplaceable/internal/services"
	log "github.com/sirupsen/logrus"
	"net/http"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

func badRequest(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusBadRequest, "invalid_request", message)
}

// writeServiceError maps service errors onto statuses. Unknown errors are logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		badRequest(w, r, validationErr.Reason)
	case errors.Is(err, services.ErrNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, services.ErrForbidden):
		WriteError(w, r, http.StatusForbidden, "forbidden", "not allowed for this email")
	case errors.Is(err, services.ErrRefreshInProgress):
		WriteError(w, r, http.StatusConflict, "refresh_in_progress", err.Error())
	default:
		log.WithField("request_id", RequestIDFrom(r.Context())).
			Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
