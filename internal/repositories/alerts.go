package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"time"
)

type Alerts struct {
	db *gorm.DB
}

func NewAlertsRepository(db *gorm.DB) *Alerts {
	return &Alerts{db: db}
}

func (repo *Alerts) Add(ctx context.Context, alert *models.JobAlert) error {
	return repo.db.WithContext(ctx).Create(alert).Error
}

func (repo *Alerts) GetByEmail(ctx context.Context, email string) ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	if err := repo.db.WithContext(ctx).Order("created_at desc").Find(&alerts, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (repo *Alerts) GetByID(ctx context.Context, id int) (*models.JobAlert, error) {
	var alert models.JobAlert
	if err := repo.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (repo *Alerts) GetActive(ctx context.Context, limit int, offset int) ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (repo *Alerts) UpdateLastNotified(ctx context.Context, id int, notifiedAt time.Time) error {
	return repo.db.WithContext(ctx).Model(&models.JobAlert{}).Where("id = ?", id).
		Update("last_notified_at", notifiedAt.UTC()).Error
}

func (repo *Alerts) Remove(ctx context.Context, id int) error {
	return repo.db.WithContext(ctx).Delete(&models.JobAlert{ID: id}).Error
}
