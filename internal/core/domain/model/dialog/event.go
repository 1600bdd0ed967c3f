package dialog

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var (
	ErrEventIsNotConstructed = errors.New("Event must be created via one of the NewXxxEvent constructors")
	ErrChatIDIsRequired      = errs.NewValueIsRequiredError("chat id")
	ErrTokenIsRequired       = errs.NewValueIsRequiredError("callback token")
)

// EventKind tells which field of an Event carries the trigger.
type EventKind int

const (
	UnknownEvent EventKind = iota
	RestartEvent
	TextEvent
	LocationEvent
	CallbackEvent
)

func (k EventKind) String() string {
	switch k {
	case RestartEvent:
		return "restart_command"
	case TextEvent:
		return "text"
	case LocationEvent:
		return "location"
	case CallbackEvent:
		return "callback"
	default:
		return "unknown"
	}
}

// Event is one user action extracted from a messenger update: a restart
// command, typed text, a shared location or a button tap. MessageID is the
// messenger message the action originates from (the tapped keyboard or the
// typed message) and is used to clean the conversation up.
type Event struct { //nolint:recvcheck //using for validation
	kind      EventKind
	chatID    string
	messageID int64
	text      string
	location  kernel.Location
	token     string
	guard     guard.ConstructorGuard
}

// NewRestartEvent builds the event for the RestartCommand.
func NewRestartEvent(chatID string, messageID int64) (Event, error) {
	e := Event{kind: RestartEvent, messageID: messageID, text: RestartCommand, guard: guard.NewConstructorGuard()}
	if err := e.setChatID(chatID); err != nil {
		return Event{}, err
	}
	return e, nil
}

// NewTextEvent builds a typed text event. The restart command is recognized
// here so that transports never have to special-case it.
func NewTextEvent(chatID string, messageID int64, text string) (Event, error) {
	if strings.TrimSpace(text) == RestartCommand {
		return NewRestartEvent(chatID, messageID)
	}

	e := Event{kind: TextEvent, messageID: messageID, text: strings.TrimSpace(text), guard: guard.NewConstructorGuard()}
	if err := e.setChatID(chatID); err != nil {
		return Event{}, err
	}
	return e, nil
}

// NewLocationEvent builds a shared-coordinates event.
func NewLocationEvent(chatID string, messageID int64, location kernel.Location) (Event, error) {
	e := Event{kind: LocationEvent, messageID: messageID, guard: guard.NewConstructorGuard()}
	if err := errors.Join(e.setChatID(chatID), location.Validate()); err != nil {
		return Event{}, err
	}
	e.location = location
	return e, nil
}

// NewCallbackEvent builds a button tap event.
func NewCallbackEvent(chatID string, messageID int64, token string) (Event, error) {
	e := Event{kind: CallbackEvent, messageID: messageID, guard: guard.NewConstructorGuard()}
	if token == "" {
		return Event{}, errors.Join(e.setChatID(chatID), ErrTokenIsRequired)
	}
	if err := e.setChatID(chatID); err != nil {
		return Event{}, err
	}
	e.token = token
	return e, nil
}

// Validate ensures the event was created through a constructor.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e Event) Kind() EventKind {
	return e.kind
}

func (e Event) ChatID() string {
	return e.chatID
}

func (e Event) MessageID() int64 {
	return e.messageID
}

// Text returns the typed text (or the restart command).
func (e Event) Text() string {
	return e.text
}

// Location returns the shared coordinates; it is a zero value unless Kind is LocationEvent.
func (e Event) Location() kernel.Location {
	return e.location
}

// Token returns the callback token; empty unless Kind is CallbackEvent.
func (e Event) Token() string {
	return e.token
}

// Trigger returns the value the state table matches on, independent of which
// field carried it: the callback token or the typed text.
func (e Event) Trigger() string {
	if e.kind == CallbackEvent {
		return e.token
	}
	return e.text
}

// Is reports whether the event carries the given trigger.
func (e Event) Is(trigger string) bool {
	return e.kind != LocationEvent && e.Trigger() == trigger
}

func (e *Event) setChatID(chatID string) error {
	if strings.TrimSpace(chatID) == "" {
		return ErrChatIDIsRequired
	}
	e.chatID = chatID
	return nil
}
