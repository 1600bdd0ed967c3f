package http

// The update types mirror the subset of the Bot API update object the bot
// reacts to.

type Update struct {
	UpdateID         int64             `json:"update_id"`
	Message          *Message          `json:"message,omitempty"`
	CallbackQuery    *CallbackQuery    `json:"callback_query,omitempty"`
	PreCheckoutQuery *PreCheckoutQuery `json:"pre_checkout_query,omitempty"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type Message struct {
	MessageID         int64              `json:"message_id"`
	Chat              Chat               `json:"chat"`
	Text              string             `json:"text,omitempty"`
	Location          *Location          `json:"location,omitempty"`
	SuccessfulPayment *SuccessfulPayment `json:"successful_payment,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data,omitempty"`
	Message *Message `json:"message,omitempty"`
}

type PreCheckoutQuery struct {
	ID             string `json:"id"`
	Currency       string `json:"currency,omitempty"`
	TotalAmount    int64  `json:"total_amount,omitempty"`
	InvoicePayload string `json:"invoice_payload"`
}

type SuccessfulPayment struct {
	Currency       string `json:"currency,omitempty"`
	TotalAmount    int64  `json:"total_amount,omitempty"`
	InvoicePayload string `json:"invoice_payload"`
}

// Session is the admin view of a chat's dialog session.
type Session struct {
	ChatID                  string `json:"chat_id"`
	State                   string `json:"state"`
	PendingCustomerRecordID string `json:"pending_customer_record_id,omitempty"`
	ViewedProductID         string `json:"viewed_product_id,omitempty"`
	UpdatedAt               string `json:"updated_at"`
}

// Error is the body of every non-2xx answer.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
