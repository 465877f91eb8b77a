package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"gorm.io/gorm"
)

type Reviews struct {
	db *gorm.DB
}

func NewReviewsRepository(db *gorm.DB) *Reviews {
	return &Reviews{db: db}
}

func (repo *Reviews) Add(ctx context.Context, review *models.CompanyReview) error {
	review.CompanyKey = models.NormalizeCompanyName(review.Company)
	return repo.db.WithContext(ctx).Create(review).Error
}

// GetByCompany returns the company's reviews newest first along with their total count.
func (repo *Reviews) GetByCompany(ctx context.Context, company string, limit int, offset int) ([]models.CompanyReview, int64, error) {
	key := models.NormalizeCompanyName(company)
	query := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&models.CompanyReview{}).Where("company_key = ?", key)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.CompanyReview
	if err := query().Order("created_at desc, id desc").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (repo *Reviews) GetRating(ctx context.Context, company string) (models.CompanyRating, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := repo.db.WithContext(ctx).Model(&models.CompanyReview{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("company_key = ?", models.NormalizeCompanyName(company)).
		Scan(&row).Error
	if err != nil {
		return models.CompanyRating{}, err
	}
	return models.CompanyRating{Company: company, Average: row.Average, Count: row.Count}, nil
}
