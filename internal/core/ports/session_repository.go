// Package ports defines the contracts between the dialog core and everything
// it talks to: persistence, the commerce backend, the geocoder and the
// messenger. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"orderbot/internal/core/domain/model/dialog"
)

// SessionRepository defines the persistence contract for dialog sessions.
type SessionRepository interface {
	// Get returns the session of a chat. A chat never seen before yields
	// an errs.ObjectNotFoundError.
	Get(ctx context.Context, chatID string) (*dialog.Session, error)

	// Save inserts or replaces the session of its chat.
	Save(ctx context.Context, session *dialog.Session) error
}
