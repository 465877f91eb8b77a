package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"gorm.io/gorm"
	"time"
)

const jobsBatchSize = 200

// Jobs holds the refreshed job feed.
type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// ReplaceAll swaps the whole feed in one transaction.
func (repo *Jobs) ReplaceAll(ctx context.Context, jobs []models.JobListing) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.JobListing{}).Error; err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}
		return tx.CreateInBatches(jobs, jobsBatchSize).Error
	})
}

func (repo *Jobs) List(ctx context.Context) ([]models.JobListing, error) {
	var jobs []models.JobListing
	if err := repo.db.WithContext(ctx).Order("posted_date desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&models.JobListing{}).Count(&count).Error
	return count, err
}

// RemoveExpired drops listings that expired before now or were posted before postedBefore.
// Listings without a posting date are kept.
func (repo *Jobs) RemoveExpired(ctx context.Context, now time.Time, postedBefore time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date < ?", now).
		Or("posted_date > ? AND posted_date < ?", time.Time{}, postedBefore).
		Delete(&models.JobListing{})
	return res.RowsAffected, res.Error
}
