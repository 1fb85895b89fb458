package database

import (
	"gorm.io/gorm"

	"kosku/internal/repository"
)

// Migrate creates or updates the schema for every persisted collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(repository.Models()...)
}
