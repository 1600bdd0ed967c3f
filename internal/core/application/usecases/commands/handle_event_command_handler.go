package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderbot/internal/core/application/ordering"
	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/core/domain/model/reminder"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/keylock"
)

// DefaultEventTimeout bounds all collaborator calls made for one event.
const DefaultEventTimeout = 15 * time.Second

// DialogDependencies are the collaborators the state handlers drive.
type DialogDependencies struct {
	Catalog   ports.CatalogReader
	Resolver  *ordering.FulfillmentResolver
	Carts     *ordering.CartAggregator
	Checkout  *ordering.CheckoutOrchestrator
	Messenger ports.Messenger
}

// reply is what a state handler decided: the messages to send, the state to
// move to and the side data to store on the session.
type reply struct {
	messages        []outbound.Message
	next            dialog.State
	reminders       []*reminder.Reminder
	viewedProductID string
	recordID        string
}

// HandleEventCommandHandler is the dialog controller. It serializes events
// per chat, loads the session, dispatches on the current state, sends the
// resulting messages and persists the next state.
//
// Failure policy: when a collaborator fails (see isCollaboratorFailure) the
// failure is logged, one apology is sent and the session is not saved, so the
// chat stays where it was.
//
// Example:
//
//	handler := NewHandleEventCommandHandler(uowFactory, deps, 10*time.Second, logger)
//	event, _ := dialog.NewTextEvent("42", 7, "/start")
//	cmd, _ := NewHandleEventCommand(event)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // storage failure, nothing was persisted
//	}
type HandleEventCommandHandler struct {
	uowFactory DialogUoWFactory
	deps       DialogDependencies
	locks      *keylock.Locker
	timeout    time.Duration
	logger     *slog.Logger
}

// NewHandleEventCommandHandler creates the controller. A non-positive timeout
// falls back to DefaultEventTimeout.
func NewHandleEventCommandHandler(
	uowFactory DialogUoWFactory,
	deps DialogDependencies,
	timeout time.Duration,
	logger *slog.Logger,
) HandleEventCommandHandler {
	if timeout <= 0 {
		timeout = DefaultEventTimeout
	}

	return HandleEventCommandHandler{
		uowFactory: uowFactory,
		deps:       deps,
		locks:      keylock.New(),
		timeout:    timeout,
		logger:     logger.With("component", "dialog_controller"),
	}
}

// Handle processes one event. It returns nil when the event was handled or
// when a collaborator failure was reported to the user, and an error when
// the session could not be loaded or saved.
//
// The session is read outside a transaction; the write transaction is opened
// only once the messages are sent. The per-chat lock keeps the read and the
// write of one chat from interleaving with another event of that chat.
func (h *HandleEventCommandHandler) Handle(ctx context.Context, cmd HandleEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event := cmd.Event()
	unlock := h.locks.Lock(event.ChatID())
	defer unlock()

	eventCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	session, err := h.loadSession(eventCtx, uow.SessionRepository(), event.ChatID())
	if err != nil {
		return err
	}

	logger := h.logger.With(
		"chat_id", event.ChatID(),
		"state", session.State().String(),
		"event", event.Kind().String(),
	)

	if event.Kind() == dialog.RestartEvent {
		session.Restart()
	}

	r, err := h.dispatch(eventCtx, session, event)
	if err == nil {
		err = h.send(eventCtx, r.messages)
	}
	if err != nil {
		if !isCollaboratorFailure(err) {
			return err
		}
		h.apologize(ctx, event.ChatID(), err, logger)
		return nil
	}

	if event.Kind() != dialog.RestartEvent {
		h.deleteOrigin(eventCtx, event, logger)
	}

	if err = h.apply(session, r); err != nil {
		return err
	}

	if err = h.persist(eventCtx, uow, session, r.reminders); err != nil {
		return err
	}

	logger.InfoContext(eventCtx, "event handled", "next_state", session.State().String())
	return nil
}

// persist saves the session and the scheduled reminders in one transaction.
func (h *HandleEventCommandHandler) persist(
	ctx context.Context,
	uow DialogUoW,
	session *dialog.Session,
	reminders []*reminder.Reminder,
) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().Save(ctx, session); err != nil {
		return err
	}

	repo := uow.ReminderRepository()
	for _, rem := range reminders {
		if err := repo.Add(ctx, rem); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *HandleEventCommandHandler) loadSession(
	ctx context.Context,
	sessions ports.SessionRepository,
	chatID string,
) (*dialog.Session, error) {
	session, err := sessions.Get(ctx, chatID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return dialog.NewSession(chatID)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// dispatch runs the handler of the session's current state. goto_menu is
// honoured from every state.
func (h *HandleEventCommandHandler) dispatch(ctx context.Context, s *dialog.Session, e dialog.Event) (reply, error) {
	if e.Is(dialog.GotoMenu) {
		return h.showMenu(ctx, s)
	}

	switch s.State() {
	case dialog.Start:
		return h.onStart(ctx, s)
	case dialog.Menu:
		return h.onMenu(ctx, s, e)
	case dialog.ItemDetail:
		return h.onItemDetail(ctx, s, e)
	case dialog.Cart:
		return h.onCart(ctx, s, e)
	case dialog.CheckoutLocation:
		return h.onCheckoutLocation(ctx, s, e)
	case dialog.CheckoutConfirm:
		return h.onCheckoutConfirm(ctx, s, e)
	case dialog.CheckoutPayment:
		return h.onCheckoutPayment(ctx, s, e)
	case dialog.Unknown:
		return reply{}, s.State().Validate()
	default:
		return reply{}, s.State().Validate()
	}
}

func (h *HandleEventCommandHandler) apply(s *dialog.Session, r reply) error {
	if err := s.MoveTo(r.next); err != nil {
		return fmt.Errorf("apply next state: %w", err)
	}
	if r.viewedProductID != "" {
		s.ViewProduct(r.viewedProductID)
	}
	if r.recordID != "" {
		s.AttachCustomerRecord(r.recordID)
	}
	return nil
}

func (h *HandleEventCommandHandler) send(ctx context.Context, messages []outbound.Message) error {
	for _, msg := range messages {
		if err := h.deliver(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (h *HandleEventCommandHandler) deliver(ctx context.Context, msg outbound.Message) error {
	m := h.deps.Messenger
	switch v := msg.(type) {
	case outbound.Text:
		return m.SendText(ctx, v)
	case outbound.Photo:
		return m.SendPhoto(ctx, v)
	case outbound.Pin:
		return m.SendLocation(ctx, v)
	case outbound.Delete:
		return m.DeleteMessage(ctx, v)
	case outbound.Invoice:
		return m.SendInvoice(ctx, v)
	default:
		return errs.NewValueIsInvalidErrorWithCause("message is invalid", fmt.Errorf("unsupported message %T", msg))
	}
}

// deleteOrigin removes the message the event came from. Old messages may no
// longer be deletable, so failures are only logged.
func (h *HandleEventCommandHandler) deleteOrigin(ctx context.Context, e dialog.Event, logger *slog.Logger) {
	if e.MessageID() == 0 {
		return
	}
	err := h.deps.Messenger.DeleteMessage(ctx, outbound.Delete{ChatID: e.ChatID(), MessageID: e.MessageID()})
	if err != nil {
		logger.WarnContext(ctx, "failed to delete origin message", "message_id", e.MessageID(), "error", err)
	}
}

// apologize logs the failure and tells the user. It runs on its own deadline
// derived from parent, since the event's context may be the one that expired.
func (h *HandleEventCommandHandler) apologize(parent context.Context, chatID string, cause error, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), h.timeout)
	defer cancel()

	logger.ErrorContext(ctx, "event failed, session left unchanged", "error", cause)
	if err := h.deps.Messenger.SendText(ctx, ordering.Apology(chatID)); err != nil {
		logger.ErrorContext(ctx, "failed to send apology", "error", err)
	}
}

// isCollaboratorFailure reports failures of the backend, geocoder or
// messenger, as opposed to storage or programming errors. A not found that
// reaches this point refers to data the session depends on, e.g. a deleted
// customer record.
func isCollaboratorFailure(err error) bool {
	return errors.Is(err, errs.ErrTransport) ||
		errors.Is(err, errs.ErrData) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, context.DeadlineExceeded)
}

func isUnknownID(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}
