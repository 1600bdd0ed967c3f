package ordering

import (
	"context"
	"fmt"

	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/core/ports"
)

// CartAggregator keeps the user-facing view of a backend cart. Every
// operation returns a snapshot read from the backend after the mutation,
// never a locally accumulated one.
type CartAggregator struct {
	carts ports.CartStore
}

// NewCartAggregator creates a CartAggregator over the backend cart store.
func NewCartAggregator(carts ports.CartStore) *CartAggregator {
	return &CartAggregator{carts: carts}
}

// Add puts one unit of the product into the cart.
func (a *CartAggregator) Add(ctx context.Context, cartID, productID string) (cart.Snapshot, error) {
	if err := a.carts.AddToCart(ctx, cartID, productID, 1); err != nil {
		return cart.Snapshot{}, fmt.Errorf("add product %s to cart: %w", productID, err)
	}
	return a.Snapshot(ctx, cartID)
}

// Remove deletes a line item from the cart.
func (a *CartAggregator) Remove(ctx context.Context, cartID, lineItemID string) (cart.Snapshot, error) {
	if err := a.carts.RemoveFromCart(ctx, cartID, lineItemID); err != nil {
		return cart.Snapshot{}, fmt.Errorf("remove line item %s from cart: %w", lineItemID, err)
	}
	return a.Snapshot(ctx, cartID)
}

// Snapshot reads the current cart.
func (a *CartAggregator) Snapshot(ctx context.Context, cartID string) (cart.Snapshot, error) {
	snapshot, err := a.carts.GetCart(ctx, cartID)
	if err != nil {
		return cart.Snapshot{}, fmt.Errorf("read cart %s: %w", cartID, err)
	}
	return snapshot, nil
}
