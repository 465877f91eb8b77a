package httpapi

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"net/http"
	"time"
)

type NewsletterHandler struct {
	Newsletter NewsletterManager
}

type subscribeRequest struct {
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
}

type subscribeResponse struct {
	Email            string    `json:"email"`
	Interests        []string  `json:"interests"`
	UnsubscribeToken string    `json:"unsubscribeToken"`
	SubscribedAt     time.Time `json:"subscribedAt"`
}

func (h NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	subscriber, err := h.Newsletter.Subscribe(r.Context(), req.Email, req.Interests)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, toSubscribeResponse(subscriber))
}

func toSubscribeResponse(subscriber models.Subscriber) subscribeResponse {
	interests := subscriber.Interests
	if interests == nil {
		interests = []string{}
	}
	return subscribeResponse{
		Email:            subscriber.Email,
		Interests:        interests,
		UnsubscribeToken: subscriber.UnsubscribeToken,
		SubscribedAt:     subscriber.SubscribedAt,
	}
}

func (h NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.Newsletter.Unsubscribe(r.Context(), r.PathValue("token")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
