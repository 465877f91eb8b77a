package services

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"math"
	"strings"
	"time"
)

const reviewsPageSize = 10

type ReviewPage struct {
	Reviews    []models.CompanyReview `json:"reviews"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalPages int                    `json:"totalPages"`
	HasMore    bool                   `json:"hasMore"`
}

type reviewRepository interface {
	Add(ctx context.Context, review *models.CompanyReview) error
	GetByCompany(ctx context.Context, company string, limit int, offset int) ([]models.CompanyReview, int64, error)
	GetRating(ctx context.Context, company string) (models.CompanyRating, error)
}

type ReviewService struct {
	reviews reviewRepository
}

func NewReviewService(reviews reviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) Create(ctx context.Context, review models.CompanyReview) (models.CompanyReview, error) {
	review.ID = 0
	review.Company = strings.Join(strings.Fields(review.Company), " ")
	review.AuthorEmail = normalizeEmail(review.AuthorEmail)
	if err := validateStruct(review); err != nil {
		return models.CompanyReview{}, err
	}

	review.CreatedAt = time.Now().UTC()
	if err := s.reviews.Add(ctx, &review); err != nil {
		return models.CompanyReview{}, err
	}
	return review, nil
}

// ListByCompany returns reviews newest first. Pages start at 1.
func (s *ReviewService) ListByCompany(ctx context.Context, company string, page int) (ReviewPage, error) {
	if strings.TrimSpace(company) == "" {
		return ReviewPage{}, newValidationError("company is required")
	}
	if page < 0 {
		return ReviewPage{}, newValidationError("page must be positive")
	}
	page = max(page, 1)

	reviews, total, err := s.reviews.GetByCompany(ctx, company, reviewsPageSize, (page-1)*reviewsPageSize)
	if err != nil {
		return ReviewPage{}, err
	}

	totalPages := int((total + reviewsPageSize - 1) / reviewsPageSize)
	return ReviewPage{
		Reviews:    reviews,
		Total:      total,
		Page:       page,
		PageSize:   reviewsPageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

func (s *ReviewService) Summary(ctx context.Context, company string) (models.CompanyRating, error) {
	company = strings.Join(strings.Fields(company), " ")
	if company == "" {
		return models.CompanyRating{}, newValidationError("company is required")
	}

	rating, err := s.reviews.GetRating(ctx, company)
	if err != nil {
		return models.CompanyRating{}, err
	}
	rating.Average = math.Round(rating.Average*10) / 10
	return rating, nil
}
