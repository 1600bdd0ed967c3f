package moltin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/pkg/errs"
)

// GetCart reads the line items and the total of a cart. An unknown cart is
// an empty one.
func (c *Client) GetCart(ctx context.Context, cartID string) (cart.Snapshot, error) {
	var body struct {
		Data []cartItemDTO `json:"data"`
		Meta cartMetaDTO   `json:"meta"`
	}
	raw, err := c.do(ctx, "get cart", http.MethodGet, c.itemsPath(cartID), nil, nil)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.NewSnapshot(cartID, nil, 0)
	}
	if err != nil {
		return cart.Snapshot{}, err
	}
	if err = json.Unmarshal(raw, &body); err != nil {
		return cart.Snapshot{}, errs.NewDataErrorWithCause(service, "get cart body", err)
	}

	items := make([]cart.LineItem, 0, len(body.Data))
	for _, dto := range body.Data {
		if dto.UnitPrice.Amount == nil {
			return cart.Snapshot{}, errs.NewDataError(service, "line item unit price")
		}
		item, err := cart.NewLineItem(dto.ID, dto.ProductID, dto.Name, dto.Quantity, *dto.UnitPrice.Amount)
		if err != nil {
			return cart.Snapshot{}, errs.NewDataErrorWithCause(service, "line item", err)
		}
		items = append(items, item)
	}

	var total int64
	if amount := body.Meta.DisplayPrice.WithTax.Amount; amount != nil {
		total = *amount
	} else if len(items) > 0 {
		return cart.Snapshot{}, errs.NewDataError(service, "cart total")
	}

	snapshot, err := cart.NewSnapshot(cartID, items, total)
	if err != nil {
		return cart.Snapshot{}, errs.NewDataErrorWithCause(service, "cart", err)
	}
	return snapshot, nil
}

// AddToCart adds quantity units of a product, priced in the configured currency.
func (c *Client) AddToCart(ctx context.Context, cartID, productID string, quantity int) error {
	var req cartItemRequest
	req.Data.ID = productID
	req.Data.Type = "cart_item"
	req.Data.Quantity = quantity

	headers := map[string]string{"X-MOLTIN-CURRENCY": c.cfg.Currency}
	return c.call(ctx, "add to cart", http.MethodPost, c.itemsPath(cartID), req, nil, headers)
}

// RemoveFromCart deletes a line item.
func (c *Client) RemoveFromCart(ctx context.Context, cartID, lineItemID string) error {
	path := c.itemsPath(cartID) + "/" + url.PathEscape(lineItemID)
	return c.call(ctx, "remove from cart", http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) itemsPath(cartID string) string {
	return "/v2/carts/" + url.PathEscape(cartID) + "/items"
}
