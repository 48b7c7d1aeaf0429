package db

import (
	"github.com/brightdesk-dev/brightdesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(database *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.DeletedProject{},
		&models.Invoice{},
		&models.Payment{},
	}

	migrator := database.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := database.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
