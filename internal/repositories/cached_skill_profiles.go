package repositories

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
	"time"
)

type skillProfileRepository interface {
	Save(ctx context.Context, profile models.SkillProfile) error
	GetByEmail(ctx context.Context, email string) (*models.SkillProfile, error)
}

type CachedSkillProfiles struct {
	repo  skillProfileRepository
	cache *gocache.Cache
}

func NewCachedSkillProfiles(repo skillProfileRepository) *CachedSkillProfiles {
	return &CachedSkillProfiles{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c CachedSkillProfiles) Save(ctx context.Context, profile models.SkillProfile) error {
	if err := c.repo.Save(ctx, profile); err != nil {
		return err
	}
	c.cache.Set(profile.Email, profile, gocache.DefaultExpiration)
	return nil
}

func (c CachedSkillProfiles) GetByEmail(ctx context.Context, email string) (*models.SkillProfile, error) {
	if value, found := c.cache.Get(email); found {
		profile := value.(models.SkillProfile)
		return &profile, nil
	}

	profile, err := c.repo.GetByEmail(ctx, email)
	if err == nil && profile != nil {
		c.cache.Set(email, *profile, gocache.DefaultExpiration)
	}
	return profile, err
}
