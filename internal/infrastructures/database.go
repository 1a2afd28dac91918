package infrastructures

import (
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(config *AppConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(config.DATABASE_URL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if config.AUTO_MIGRATE {
		if err := Migrate(db); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Group{})
}
