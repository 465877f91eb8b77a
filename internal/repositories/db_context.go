package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	entities := []struct {
		name  string
		value any
	}{
		{"JobListing", &models.JobListing{}},
		{"SkillProfile", &models.SkillProfile{}},
		{"JobAlert", &models.JobAlert{}},
		{"Referral", &models.Referral{}},
		{"CompanyReview", &models.CompanyReview{}},
		{"Subscriber", &models.Subscriber{}},
		{"ContactMessage", &models.ContactMessage{}},
		{"ArbitraryData", &models.ArbitraryData{}},
	}

	for _, entity := range entities {
		if err := c.DB.AutoMigrate(entity.value); err != nil {
			return fmt.Errorf("failed to migrate %s entity: %w", entity.name, err)
		}
	}
	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
