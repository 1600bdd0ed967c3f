// Package moltin implements ports.CommerceBackend over a Moltin-style REST
// API: products and files for the catalog, carts, and two flows holding the
// fulfillment points and the customer location records.
package moltin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"orderbot/internal/pkg/errs"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const service = "commerce"

// Config holds the API location, credentials and flow slugs.
type Config struct {
	BaseURL       string
	TokenURL      string
	ClientID      string
	ClientSecret  string
	Currency      string
	PointsFlow    string
	CustomersFlow string
}

func (c Config) validate() error {
	var missing []error
	for name, v := range map[string]string{
		"base url":       c.BaseURL,
		"token url":      c.TokenURL,
		"client id":      c.ClientID,
		"currency":       c.Currency,
		"points flow":    c.PointsFlow,
		"customers flow": c.CustomersFlow,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, errs.NewValueIsRequiredError(name))
		}
	}
	return errors.Join(missing...)
}

// Client talks to the commerce backend. Access tokens are obtained with the
// client credentials grant and refreshed when they expire.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates the client. base is the transport client used for both
// token and API calls; nil means http.DefaultClient. ctx scopes token
// requests and should live as long as the client.
func NewClient(ctx context.Context, cfg Config, base *http.Client) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}

	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &Client{cfg: cfg, http: credentials.Client(ctx)}, nil
}

// call sends a request and decodes the "data" member of the answer into out.
// A nil out discards the answer.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any, headers map[string]string) error {
	raw, err := c.do(ctx, op, method, path, body, headers)
	if err != nil || out == nil {
		return err
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err = json.Unmarshal(raw, &envelope); err != nil {
		return errs.NewDataErrorWithCause(service, op+" body", err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errs.NewDataError(service, op+" data")
	}
	if err = json.Unmarshal(envelope.Data, out); err != nil {
		return errs.NewDataErrorWithCause(service, op+" data", err)
	}
	return nil
}

// do sends a JSON request to path and returns the raw answer. Failures are
// classified into the errs taxonomy, including answers that carry an
// "errors" member with a 2xx status.
func (c *Client) do(ctx context.Context, op, method, path string, body any, headers map[string]string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewTransportErrorWithCause(service, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewTransportErrorWithCause(service, op, err)
	}

	if err = classifyStatus(op, path, resp.StatusCode, raw); err != nil {
		return nil, err
	}

	if len(raw) > 0 {
		var failure struct {
			Errors []apiError `json:"errors"`
		}
		if json.Unmarshal(raw, &failure) == nil && len(failure.Errors) > 0 {
			return nil, errs.NewDataErrorWithCause(service, op, failure.Errors[0])
		}
	}
	return raw, nil
}

func classifyStatus(op, path string, status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return errs.NewObjectNotFoundError(op, path)
	case status == http.StatusTooManyRequests || status >= 500:
		return errs.NewTransportErrorWithCause(service, op, statusError(status, body))
	default:
		return errs.NewDataErrorWithCause(service, op, statusError(status, body))
	}
}

func statusError(status int, body []byte) error {
	const maxBody = 256
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return fmt.Errorf("status %d: %s", status, strings.TrimSpace(string(body)))
}

type apiError struct {
	Status any    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e apiError) Error() string {
	return fmt.Sprintf("%v %s: %s", e.Status, e.Title, e.Detail)
}
