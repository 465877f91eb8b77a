package httpapi

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"net/http"
)

type SkillsHandler struct {
	Skills SkillMatcher
}

func (h SkillsHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.SkillProfile
	if err := decodeJSON(w, r, &profile); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	saved, err := h.Skills.SaveProfile(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, saved)
}

func (h SkillsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Skills.GetProfile(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// matchRequest carries either a stored profile's email or an inline profile.
type matchRequest struct {
	Email   string               `json:"email"`
	Limit   int                  `json:"limit"`
	Profile *models.SkillProfile `json:"profile"`
}

func (h SkillsHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	var err error
	var report any
	switch {
	case req.Profile != nil:
		report, err = h.Skills.MatchJobs(r.Context(), *req.Profile, req.Limit)
	case req.Email != "":
		report, err = h.Skills.MatchProfile(r.Context(), req.Email, req.Limit)
	default:
		badRequest(w, r, "email or profile is required")
		return
	}

	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, report)
}
