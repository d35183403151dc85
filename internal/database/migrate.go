package database

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// AllModels returns every persisted model in migration-safe order (referenced
// tables first). Tests reuse this list to migrate an in-memory database.
func AllModels() []any {
	return []any{
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	}
}

// Migrate creates or updates the schema for all models. The follows table
// gets its composite unique index and the no-self-follow check constraint
// from the model tags, so both invariants live in the storage engine rather
// than application pre-checks alone.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
