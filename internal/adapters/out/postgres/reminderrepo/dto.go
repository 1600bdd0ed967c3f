// Package reminderrepo provides data transfer objects and mapping functions
// for reminder persistence.
package reminderrepo

import (
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/reminder"

	"github.com/google/uuid"
)

// ReminderDTO represents a scheduled message in the reminders table. Pending
// rows are looked up by status and due time.
type ReminderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID string    `gorm:"size:64;not null"`
	Text   string    `gorm:"not null"`
	DueAt  time.Time `gorm:"index:idx_reminders_status_due,priority:2;not null"`
	Status int       `gorm:"index:idx_reminders_status_due,priority:1;not null"`
}

// TableName overrides GORM's default naming convention.
func (ReminderDTO) TableName() string {
	return "reminders"
}

func fromDomain(r *reminder.Reminder) ReminderDTO {
	return ReminderDTO{
		ID:     r.ID().Value(),
		ChatID: r.ChatID(),
		Text:   r.Text(),
		DueAt:  r.DueAt(),
		Status: int(r.Status()),
	}
}

func toDomain(dto ReminderDTO) (*reminder.Reminder, error) {
	id, err := kernel.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	return reminder.RestoreReminder(id, dto.ChatID, dto.Text, dto.DueAt, reminder.Status(dto.Status))
}
