package ports

import (
	"context"

	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/fulfillment"
)

// Every method below classifies its failures: errs.TransportError for network,
// timeout and 5xx/429 answers, errs.DataError for payloads missing expected
// fields, errs.ObjectNotFoundError for unknown ids.

// CatalogReader gives read access to the product catalog.
type CatalogReader interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, productID string) (catalog.Product, error)
}

// CartStore manipulates the backend cart of a chat.
type CartStore interface {
	GetCart(ctx context.Context, cartID string) (cart.Snapshot, error)
	AddToCart(ctx context.Context, cartID, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, cartID, lineItemID string) error
}

// FulfillmentDirectory stores fulfillment points and customer location records.
type FulfillmentDirectory interface {
	ListFulfillmentPoints(ctx context.Context) ([]fulfillment.Point, error)
	GetFulfillmentPoint(ctx context.Context, pointID string) (fulfillment.Point, error)

	// CreateCustomerRecord stores the record and returns the id assigned by the backend.
	CreateCustomerRecord(ctx context.Context, record fulfillment.CustomerRecord) (string, error)
	GetCustomerRecord(ctx context.Context, recordID string) (fulfillment.CustomerRecord, error)
}

// CommerceBackend is the full commerce backend contract.
type CommerceBackend interface {
	CatalogReader
	CartStore
	FulfillmentDirectory
}
