package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSessionQueryHandler reads a session straight from the sessions table.
type GetSessionQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionQueryHandler creates a handler for session lookups.
func NewGetSessionQueryHandler(db *gorm.DB) GetSessionQueryHandler {
	return GetSessionQueryHandler{db: db}
}

// Handle returns the session of the queried chat or an
// errs.ObjectNotFoundError when the chat has none.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	var (
		response GetSessionQueryResponse
		state    int
		record   sql.NullString
		viewed   sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			chat_id,
			state,
			pending_record_id,
			viewed_product_id,
			updated_at
		FROM sessions
		WHERE chat_id = ?
	`, query.ChatID()).Row()

	err := row.Scan(&response.ChatID, &state, &record, &viewed, &response.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetSessionQueryResponse{}, errs.NewObjectNotFoundError("session", query.ChatID())
	}
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	response.State = dialog.State(state).String()
	response.PendingCustomerRecordID = record.String
	response.ViewedProductID = viewed.String

	return response, nil
}
