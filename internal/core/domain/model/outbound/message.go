// Package outbound describes what the bot says back: the messages state
// handlers return and the controller hands to the messenger. Rendering them
// into a wire format is the messenger adapter's job.
package outbound

import "orderbot/internal/core/domain/model/kernel"

// Button is one keyboard button. Token comes back as the callback token when
// the user taps it.
type Button struct {
	Text  string
	Token string
}

// Keyboard is an inline keyboard, one slice per row.
type Keyboard [][]Button

// Row appends a row of buttons and returns the keyboard for chaining.
func (k Keyboard) Row(buttons ...Button) Keyboard {
	if len(buttons) == 0 {
		return k
	}
	return append(k, buttons)
}

// Tokens returns every button token in row order.
func (k Keyboard) Tokens() []string {
	var tokens []string
	for _, row := range k {
		for _, b := range row {
			tokens = append(tokens, b.Token)
		}
	}
	return tokens
}

// Has reports whether a button with the token is present.
func (k Keyboard) Has(token string) bool {
	for _, t := range k.Tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Message is one of Text, Photo, Pin, Delete or Invoice.
type Message interface {
	// Recipient is the chat the message goes to.
	Recipient() string
	isMessage()
}

// Text is a plain message, optionally with a keyboard.
type Text struct {
	ChatID   string
	Body     string
	Keyboard Keyboard
}

// Photo is an image by URL with a caption and keyboard.
type Photo struct {
	ChatID   string
	URL      string
	Caption  string
	Keyboard Keyboard
}

// Pin shares a map location.
type Pin struct {
	ChatID   string
	Location kernel.Location
}

// Delete removes a previously sent message.
type Delete struct {
	ChatID    string
	MessageID int64
}

// Invoice asks the messenger to collect a card payment. Amount is in the
// smallest currency unit.
type Invoice struct {
	ChatID      string
	Title       string
	Description string
	Payload     string
	Currency    string
	Label       string
	Amount      int64
}

func (m Text) Recipient() string    { return m.ChatID }
func (m Photo) Recipient() string   { return m.ChatID }
func (m Pin) Recipient() string     { return m.ChatID }
func (m Delete) Recipient() string  { return m.ChatID }
func (m Invoice) Recipient() string { return m.ChatID }

func (Text) isMessage()    {}
func (Photo) isMessage()   {}
func (Pin) isMessage()     {}
func (Delete) isMessage()  {}
func (Invoice) isMessage() {}
