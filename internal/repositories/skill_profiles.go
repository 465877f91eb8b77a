package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SkillProfiles struct {
	db *gorm.DB
}

func NewSkillProfilesRepository(db *gorm.DB) *SkillProfiles {
	return &SkillProfiles{db: db}
}

func (repo *SkillProfiles) Save(ctx context.Context, profile models.SkillProfile) error {
	return repo.db.WithContext(ctx).Save(&profile).Error
}

// GetByEmail returns nil without an error when there is no profile.
func (repo *SkillProfiles) GetByEmail(ctx context.Context, email string) (*models.SkillProfile, error) {
	var profile models.SkillProfile
	if err := repo.db.WithContext(ctx).First(&profile, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
