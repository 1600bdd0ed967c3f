package dialog

import (
	"errors"
	"strings"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created through
	// NewSession or RestoreSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession constructor")
)

// Session is the per-chat dialog record. It is the aggregate root the
// controller loads before handling an event and saves after the handler
// returned the next state.
//
// Session follows these invariants:
//   - chat id is never empty
//   - state is always a valid State
//   - state only changes along the allowed transitions (see State)
//   - pendingRecordID refers to the last accepted Customer Location Record
//     and survives until a new location is accepted
type Session struct {
	// chatID is the messenger identifier of the user and also the cart id
	chatID string

	// state is the current step of the flow
	state State

	// pendingRecordID is the backend id of the accepted Customer Location Record
	pendingRecordID string

	// viewedProductID is the product card on screen in ItemDetail
	viewedProductID string

	isConstructed bool
}

// NewSession creates the record for a chat seen for the first time. It starts
// in Start so that the first event runs the greeting.
func NewSession(chatID string) (*Session, error) {
	s := &Session{state: Start, isConstructed: true}
	if err := s.setChatID(chatID); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSession rebuilds a persisted session. Used by repositories only.
func RestoreSession(chatID string, state State, pendingRecordID, viewedProductID string) (*Session, error) {
	s := &Session{
		pendingRecordID: pendingRecordID,
		viewedProductID: viewedProductID,
		isConstructed:   true,
	}

	if err := errors.Join(s.setChatID(chatID), s.setState(state)); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Session was built by one of its constructors.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) ChatID() string {
	return s.chatID
}

// CartID returns the backend cart of the chat. Carts are keyed by chat id.
func (s *Session) CartID() string {
	return s.chatID
}

func (s *Session) State() State {
	return s.state
}

// PendingRecordID returns the accepted Customer Location Record id, or "".
func (s *Session) PendingRecordID() string {
	return s.pendingRecordID
}

// ViewedProductID returns the product shown in ItemDetail, or "".
func (s *Session) ViewedProductID() string {
	return s.viewedProductID
}

// MoveTo changes the state along an allowed transition. Staying in the same
// state is a valid move for every state except Start.
func (s *Session) MoveTo(next State) error {
	if err := s.state.CanMoveTo(next); err != nil {
		return err
	}

	s.state = next
	if next != ItemDetail {
		s.viewedProductID = ""
	}
	return nil
}

// Restart puts the session back to Start regardless of the current state.
// The pending customer record is kept: a new order may reuse it.
func (s *Session) Restart() {
	s.state = Start
	s.viewedProductID = ""
}

// ViewProduct remembers the product card shown in ItemDetail.
func (s *Session) ViewProduct(productID string) {
	s.viewedProductID = productID
}

// AttachCustomerRecord stores the id of a freshly created Customer Location Record.
func (s *Session) AttachCustomerRecord(recordID string) {
	s.pendingRecordID = recordID
}

func (s *Session) setChatID(chatID string) error {
	if strings.TrimSpace(chatID) == "" {
		return ErrChatIDIsRequired
	}
	s.chatID = chatID
	return nil
}

func (s *Session) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	s.state = state
	return nil
}
