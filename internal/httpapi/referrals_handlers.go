package httpapi

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"net/http"
)

type ReferralsHandler struct {
	Referrals ReferralManager
}

func (h ReferralsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var referral models.Referral
	if err := decodeJSON(w, r, &referral); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	created, err := h.Referrals.Create(r.Context(), referral)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (h ReferralsHandler) Get(w http.ResponseWriter, r *http.Request) {
	referral, err := h.Referrals.GetByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, referral)
}

func (h ReferralsHandler) List(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.Referrals.ListByReferrer(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if referrals == nil {
		referrals = []models.Referral{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"referrals": referrals})
}

type referralStatusRequest struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}

func (h ReferralsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req referralStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	referral, err := h.Referrals.UpdateStatus(r.Context(), r.PathValue("code"), req.Status, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, referral)
}
