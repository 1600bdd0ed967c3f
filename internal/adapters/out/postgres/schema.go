package postgres

import (
	"orderbot/internal/adapters/out/postgres/reminderrepo"
	"orderbot/internal/adapters/out/postgres/sessionrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the sessions and reminders tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&sessionrepo.SessionDTO{}, &reminderrepo.ReminderDTO{})
}
