package httpapi

import (
	"crypto/subtle"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/scoring"
	"github.com/maxaizer/irreplaceable/internal/services"
	"net/http"
	"strings"
)

const refreshSecretHeader = "X-Refresh-Secret"

type JobsHandler struct {
	Jobs          JobSearcher
	Sources       SourceLister
	Refresher     FeedRefresher
	RefreshSecret string
}

func (h JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	filter := services.SearchFilter{
		Query:      firstOf(values, "q", "query"),
		Location:   values.Get("location"),
		Category:   values.Get("category"),
		Experience: models.ExperienceLevel(values.Get("experience")),
	}

	var err error
	if filter.Page, err = queryInt(values, "page"); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if filter.PageSize, err = queryInt(values, "pageSize"); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if filter.MinSalary, err = queryInt(values, "minSalary"); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if filter.MinAIScore, err = queryInt(values, "minAiScore"); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if filter.Remote, err = queryBool(values, "remote"); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	page, err := h.Jobs.Search(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

func (h JobsHandler) EnabledSources(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"sources": h.Sources.GetEnabledSources()})
}

func (h JobsHandler) authorized(r *http.Request) bool {
	if h.RefreshSecret == "" {
		return false
	}
	given := r.Header.Get(refreshSecretHeader)
	return subtle.ConstantTimeCompare([]byte(given), []byte(h.RefreshSecret)) == 1
}

func (h JobsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "missing or wrong refresh secret")
		return
	}

	stats, err := h.Refresher.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

func (h JobsHandler) LastRefresh(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Refresher.LastStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if stats == nil {
		WriteError(w, r, http.StatusNotFound, "not_found", "no refresh has completed yet")
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

type scoreRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func (h JobsHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Description) == "" {
		badRequest(w, r, "title or description is required")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int{"aiResistanceScore": scoring.Score(req.Title, req.Description, req.Skills)})
}
