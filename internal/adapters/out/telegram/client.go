// Package telegram implements ports.Messenger over the Telegram Bot API.
// Outgoing calls share one token bucket so bursts stay under the API limits.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const service = "messenger"

// DefaultAPIURL is the public Bot API endpoint.
const DefaultAPIURL = "https://api.telegram.org"

// Config configures the client. RatePerSecond and Burst bound outgoing calls;
// zero values fall back to 25 calls per second with a burst of 5.
type Config struct {
	APIURL        string
	Token         string
	ProviderToken string
	RatePerSecond float64
	Burst         int
}

// Client sends messages through the Bot API.
type Client struct {
	endpoint      string
	providerToken string
	limiter       *rate.Limiter
	http          *http.Client
}

// NewClient creates the client. A nil httpClient means http.DefaultClient.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errs.NewValueIsRequiredError("bot token")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 25
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:      strings.TrimSuffix(cfg.APIURL, "/") + "/bot" + cfg.Token + "/",
		providerToken: cfg.ProviderToken,
		limiter:       rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		http:          httpClient,
	}, nil
}

type inlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type replyMarkup struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

func markup(kb outbound.Keyboard) *replyMarkup {
	if len(kb) == 0 {
		return nil
	}
	rows := make([][]inlineButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]inlineButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, inlineButton{Text: b.Text, CallbackData: b.Token})
		}
		rows = append(rows, buttons)
	}
	return &replyMarkup{InlineKeyboard: rows}
}

// SendText sends a text message with an optional inline keyboard.
func (c *Client) SendText(ctx context.Context, msg outbound.Text) error {
	return c.call(ctx, "sendMessage", struct {
		ChatID      string       `json:"chat_id"`
		Text        string       `json:"text"`
		ReplyMarkup *replyMarkup `json:"reply_markup,omitempty"`
	}{msg.ChatID, msg.Body, markup(msg.Keyboard)})
}

// SendPhoto sends a photo by URL with a caption.
func (c *Client) SendPhoto(ctx context.Context, msg outbound.Photo) error {
	return c.call(ctx, "sendPhoto", struct {
		ChatID      string       `json:"chat_id"`
		Photo       string       `json:"photo"`
		Caption     string       `json:"caption,omitempty"`
		ReplyMarkup *replyMarkup `json:"reply_markup,omitempty"`
	}{msg.ChatID, msg.URL, msg.Caption, markup(msg.Keyboard)})
}

// SendLocation sends a map pin.
func (c *Client) SendLocation(ctx context.Context, msg outbound.Pin) error {
	return c.call(ctx, "sendLocation", struct {
		ChatID    string  `json:"chat_id"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}{msg.ChatID, msg.Location.Latitude(), msg.Location.Longitude()})
}

// DeleteMessage removes a message from a chat.
func (c *Client) DeleteMessage(ctx context.Context, msg outbound.Delete) error {
	return c.call(ctx, "deleteMessage", struct {
		ChatID    string `json:"chat_id"`
		MessageID int64  `json:"message_id"`
	}{msg.ChatID, msg.MessageID})
}

type labeledPrice struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// SendInvoice issues an invoice payable through the configured provider.
func (c *Client) SendInvoice(ctx context.Context, msg outbound.Invoice) error {
	return c.call(ctx, "sendInvoice", struct {
		ChatID        string         `json:"chat_id"`
		Title         string         `json:"title"`
		Description   string         `json:"description"`
		Payload       string         `json:"payload"`
		ProviderToken string         `json:"provider_token"`
		Currency      string         `json:"currency"`
		Prices        []labeledPrice `json:"prices"`
	}{
		ChatID:        msg.ChatID,
		Title:         msg.Title,
		Description:   msg.Description,
		Payload:       msg.Payload,
		ProviderToken: c.providerToken,
		Currency:      msg.Currency,
		Prices:        []labeledPrice{{Label: msg.Label, Amount: msg.Amount}},
	})
}

// AnswerPreCheckout approves or declines a pending payment.
func (c *Client) AnswerPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage string) error {
	return c.call(ctx, "answerPreCheckoutQuery", struct {
		QueryID      string `json:"pre_checkout_query_id"`
		OK           bool   `json:"ok"`
		ErrorMessage string `json:"error_message,omitempty"`
	}{queryID, ok, errorMessage})
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

func (c *Client) call(ctx context.Context, method string, payload any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.NewTransportErrorWithCause(service, method, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewTransportErrorWithCause(service, method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportErrorWithCause(service, method, err)
	}

	var decoded apiResponse
	if err = json.Unmarshal(raw, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return errs.NewTransportErrorWithCause(service, method, fmt.Errorf("status %d", resp.StatusCode))
		}
		return errs.NewDataErrorWithCause(service, method, err)
	}
	if !decoded.OK {
		return errs.NewTransportErrorWithCause(service, method,
			fmt.Errorf("error %d: %s", decoded.ErrorCode, decoded.Description))
	}
	return nil
}
