// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderbot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// ReminderRepoFactory provides access to the reminder repository within a transaction.
	ReminderRepoFactory interface {
		ReminderRepository() ports.ReminderRepository
	}

	// DialogUoW is the transaction an event is handled in: the session is
	// saved together with the reminders the event scheduled.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sessions := uow.SessionRepository()
	//   reminders := uow.ReminderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DialogUoW interface {
		TxManager
		SessionRepoFactory
		ReminderRepoFactory
	}

	// DialogUoWFactory creates new dialog unit of work instances.
	DialogUoWFactory interface {
		Create() DialogUoW
	}

	// ReminderUoW manages transactions for reminder-only operations.
	ReminderUoW interface {
		TxManager
		ReminderRepoFactory
	}

	// ReminderUoWFactory creates new reminder unit of work instances.
	ReminderUoWFactory interface {
		Create() ReminderUoW
	}
)
