// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the admin HTTP surface.
package queries

import (
	"errors"
	"strings"
	"time"

	"orderbot/internal/pkg/guard"
)

var (
	ErrGetSessionQueryIsNotConstructed = errors.New(
		"GetSessionQuery must be created via NewGetSessionQuery constructor",
	)
	ErrChatIDIsRequired = errors.New("chat id is required")
)

// GetSessionQuery retrieves where a chat currently is in the ordering flow.
//
// Example:
//
//	query, err := NewGetSessionQuery("42")
//	if err != nil {
//	    return err
//	}
//	session, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // chat never talked to the bot
//	}
type GetSessionQuery struct {
	chatID string

	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates a query for one chat.
func NewGetSessionQuery(chatID string) (GetSessionQuery, error) {
	if strings.TrimSpace(chatID) == "" {
		return GetSessionQuery{}, ErrChatIDIsRequired
	}
	return GetSessionQuery{chatID: chatID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) ChatID() string {
	return q.chatID
}

// GetSessionQueryResponse is the read model of a session. State is the
// state name, e.g. "CHECKOUT_CONFIRM".
type GetSessionQueryResponse struct {
	ChatID                  string
	State                   string
	PendingCustomerRecordID string
	ViewedProductID         string
	UpdatedAt               time.Time
}
