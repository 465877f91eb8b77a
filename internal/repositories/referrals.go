package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"time"
)

type Referrals struct {
	db *gorm.DB
}

func NewReferralsRepository(db *gorm.DB) *Referrals {
	return &Referrals{db: db}
}

func (repo *Referrals) Add(ctx context.Context, referral *models.Referral) error {
	return repo.db.WithContext(ctx).Create(referral).Error
}

func (repo *Referrals) ExistsCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&models.Referral{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (repo *Referrals) GetByCode(ctx context.Context, code string) (*models.Referral, error) {
	var referral models.Referral
	if err := repo.db.WithContext(ctx).First(&referral, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &referral, nil
}

func (repo *Referrals) GetByReferrer(ctx context.Context, email string) ([]models.Referral, error) {
	var referrals []models.Referral
	if err := repo.db.WithContext(ctx).Order("created_at desc").
		Find(&referrals, "referrer_email = ?", email).Error; err != nil {
		return nil, err
	}
	return referrals, nil
}

func (repo *Referrals) UpdateStatus(ctx context.Context, code string, status models.ReferralStatus) error {
	return repo.db.WithContext(ctx).Model(&models.Referral{}).Where("code = ?", code).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}
