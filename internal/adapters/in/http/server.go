// Package http is the inbound HTTP adapter: the messenger webhook that feeds
// user events into the dialog controller and the admin session read model.
//
//	@title			Order bot
//	@version		1.0
//	@description	Messenger webhook and admin read model of the pizza ordering bot.
//	@BasePath		/api/v1
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	// EventHandler runs the dialog controller for one user event.
	EventHandler interface {
		Handle(ctx context.Context, cmd commands.HandleEventCommand) error
	}

	// PreCheckoutHandler answers pre-checkout queries.
	PreCheckoutHandler interface {
		Handle(ctx context.Context, cmd commands.AnswerPreCheckoutCommand) error
	}

	// PaymentHandler acknowledges successful payments.
	PaymentHandler interface {
		Handle(ctx context.Context, cmd commands.CompletePaymentCommand) error
	}

	// SessionQueryHandler reads the session read model.
	SessionQueryHandler interface {
		Handle(ctx context.Context, query queries.GetSessionQuery) (queries.GetSessionQueryResponse, error)
	}
)

// Server translates HTTP requests into application commands and queries.
type Server struct {
	// Command handlers
	eventHandler       EventHandler
	preCheckoutHandler PreCheckoutHandler
	paymentHandler     PaymentHandler

	// Query handlers
	getSessionHandler SessionQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	eventHandler EventHandler,
	preCheckoutHandler PreCheckoutHandler,
	paymentHandler PaymentHandler,
	getSessionHandler SessionQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		eventHandler:       eventHandler,
		preCheckoutHandler: preCheckoutHandler,
		paymentHandler:     paymentHandler,
		getSessionHandler:  getSessionHandler,
		logger:             logger.With("component", "http"),
	}
}

// PostUpdate handles POST /api/v1/updates - the messenger webhook.
//
// Once the update is decoded the answer is always 200: failures belong to one
// chat and are logged, the messenger must not redeliver the update.
//
//	@Summary	Receive a messenger update
//	@Accept		json
//	@Param		update	body	Update	true	"Messenger update"
//	@Success	200
//	@Failure	400	{object}	Error
//	@Router		/updates [post]
func (s *Server) PostUpdate(ctx echo.Context) error {
	var update Update
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid update body",
		})
	}

	reqCtx := ctx.Request().Context()
	logger := s.logger.With("update_id", update.UpdateID)

	if err := s.dispatch(reqCtx, update); err != nil {
		logger.ErrorContext(reqCtx, "Update failed", "error", err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) dispatch(ctx context.Context, update Update) error {
	switch {
	case update.PreCheckoutQuery != nil:
		q := update.PreCheckoutQuery
		cmd, err := commands.NewAnswerPreCheckoutCommand(q.ID, q.InvoicePayload)
		if err != nil {
			return err
		}
		return s.preCheckoutHandler.Handle(ctx, cmd)

	case update.Message != nil && update.Message.SuccessfulPayment != nil:
		cmd, err := commands.NewCompletePaymentCommand(chatID(update.Message.Chat))
		if err != nil {
			return err
		}
		return s.paymentHandler.Handle(ctx, cmd)

	case update.Message != nil:
		event, err := messageEvent(*update.Message)
		if err != nil {
			return err
		}
		return s.handleEvent(ctx, event)

	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		q := update.CallbackQuery
		event, err := dialog.NewCallbackEvent(chatID(q.Message.Chat), q.Message.MessageID, q.Data)
		if err != nil {
			return err
		}
		return s.handleEvent(ctx, event)
	}

	return nil
}

func (s *Server) handleEvent(ctx context.Context, event dialog.Event) error {
	cmd, err := commands.NewHandleEventCommand(event)
	if err != nil {
		return err
	}
	return s.eventHandler.Handle(ctx, cmd)
}

func messageEvent(msg Message) (dialog.Event, error) {
	if msg.Location != nil {
		location, err := kernel.NewLocation(msg.Location.Latitude, msg.Location.Longitude)
		if err != nil {
			return dialog.Event{}, err
		}
		return dialog.NewLocationEvent(chatID(msg.Chat), msg.MessageID, location)
	}
	return dialog.NewTextEvent(chatID(msg.Chat), msg.MessageID, msg.Text)
}

func chatID(chat Chat) string {
	return strconv.FormatInt(chat.ID, 10)
}

// GetSession handles GET /api/v1/sessions/{chatId} - where a chat is in the flow.
//
//	@Summary	Get the dialog session of a chat
//	@Produce	json
//	@Param		chatId	path		string	true	"Chat id"
//	@Success	200		{object}	Session
//	@Failure	404		{object}	Error
//	@Router		/sessions/{chatId} [get]
func (s *Server) GetSession(ctx echo.Context) error {
	query, err := queries.NewGetSessionQuery(ctx.Param("chatId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid chat id",
		})
	}

	session, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Session not found",
			})
		}
		s.logger.ErrorContext(ctx.Request().Context(), "Session query failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve session",
		})
	}

	return ctx.JSON(http.StatusOK, Session{
		ChatID:                  session.ChatID,
		State:                   session.State,
		PendingCustomerRecordID: session.PendingCustomerRecordID,
		ViewedProductID:         session.ViewedProductID,
		UpdatedAt:               session.UpdatedAt.UTC().Format(time.RFC3339),
	})
}
