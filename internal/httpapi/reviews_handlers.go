package httpapi

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"net/http"
)

type ReviewsHandler struct {
	Reviews ReviewManager
}

// the author's email is accepted on create but never echoed back
type createReviewRequest struct {
	Company string `json:"company"`
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Pros    string `json:"pros"`
	Cons    string `json:"cons"`
	Role    string `json:"role"`
	Email   string `json:"email"`
}

func (h ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	created, err := h.Reviews.Create(r.Context(), models.CompanyReview{
		Company:     req.Company,
		Rating:      req.Rating,
		Title:       req.Title,
		Body:        req.Body,
		Pros:        req.Pros,
		Cons:        req.Cons,
		Role:        req.Role,
		AuthorEmail: req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (h ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page, err := queryInt(values, "page")
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}

	reviews, err := h.Reviews.ListByCompany(r.Context(), values.Get("company"), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if reviews.Reviews == nil {
		reviews.Reviews = []models.CompanyReview{}
	}
	WriteJSON(w, http.StatusOK, reviews)
}

func (h ReviewsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rating, err := h.Reviews.Summary(r.Context(), r.URL.Query().Get("company"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, rating)
}
