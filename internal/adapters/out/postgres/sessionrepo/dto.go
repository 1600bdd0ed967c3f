// Package sessionrepo persists dialog sessions. It maps the Session aggregate
// to the sessions table, one row per chat.
package sessionrepo

import (
	"time"

	"orderbot/internal/core/domain/model/dialog"
)

// SessionDTO is the row of one chat's dialog.
type SessionDTO struct {
	ChatID          string `gorm:"primaryKey;size:64"`
	State           int    `gorm:"not null"`
	PendingRecordID string `gorm:"size:128"`
	ViewedProductID string `gorm:"size:128"`
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming convention.
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(session *dialog.Session) SessionDTO {
	return SessionDTO{
		ChatID:          session.ChatID(),
		State:           int(session.State()),
		PendingRecordID: session.PendingRecordID(),
		ViewedProductID: session.ViewedProductID(),
	}
}

func toDomain(dto SessionDTO) (*dialog.Session, error) {
	return dialog.RestoreSession(dto.ChatID, dialog.State(dto.State), dto.PendingRecordID, dto.ViewedProductID)
}
