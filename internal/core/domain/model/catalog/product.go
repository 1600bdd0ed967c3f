// Package catalog holds the read-only product model supplied by the commerce backend.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"orderbot/internal/pkg/errs"
)

// Product is a catalog item. Price is in backend currency units.
type Product struct {
	id          string
	name        string
	description string
	price       int64
	imageURL    string
}

// NewProduct validates a product read from the backend. Description and
// image are optional.
func NewProduct(id, name, description string, price int64, imageURL string) (Product, error) {
	var errID, errName, errPrice error
	if strings.TrimSpace(id) == "" {
		errID = errs.NewValueIsRequiredError("product id")
	}
	if strings.TrimSpace(name) == "" {
		errName = errs.NewValueIsRequiredError("product name")
	}
	if price < 0 {
		errPrice = errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	if err := errors.Join(errID, errName, errPrice); err != nil {
		return Product{}, err
	}

	return Product{id: id, name: name, description: description, price: price, imageURL: imageURL}, nil
}

func (p Product) ID() string          { return p.id }
func (p Product) Name() string        { return p.name }
func (p Product) Description() string { return p.description }
func (p Product) Price() int64        { return p.price }
func (p Product) ImageURL() string    { return p.imageURL }

// Card is the text shown under the product photo.
func (p Product) Card() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nPrice: %d", p.name, p.price)
	if p.description != "" {
		fmt.Fprintf(&b, "\n\n%s", p.description)
	}
	return b.String()
}
