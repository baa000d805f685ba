package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pawrest/pawrest-server/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// AutoMigrate creates or updates the schema for every persisted model,
// including the maintenance-task ledger.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
		&SchemaTask{},
	)
}
