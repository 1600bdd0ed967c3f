package fulfillment

import (
	"errors"
	"strings"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// Point is a pizzeria: an address customers may pick up from and a courier
// chat that receives delivery orders.
type Point struct {
	id             string
	address        string
	location       kernel.Location
	courierContact string
}

// NewPoint validates a fulfillment point read from the backend.
func NewPoint(id, address string, location kernel.Location, courierContact string) (Point, error) {
	var errID, errAddress, errCourier error
	if strings.TrimSpace(id) == "" {
		errID = errs.NewValueIsRequiredError("fulfillment point id")
	}
	if strings.TrimSpace(address) == "" {
		errAddress = errs.NewValueIsRequiredError("fulfillment point address")
	}
	if strings.TrimSpace(courierContact) == "" {
		errCourier = errs.NewValueIsRequiredError("courier contact")
	}
	if err := errors.Join(errID, errAddress, location.Validate(), errCourier); err != nil {
		return Point{}, err
	}

	return Point{id: id, address: address, location: location, courierContact: courierContact}, nil
}

func (p Point) ID() string {
	return p.id
}

func (p Point) Address() string {
	return p.address
}

func (p Point) Location() kernel.Location {
	return p.location
}

// CourierContact is the messenger chat of the courier serving this point.
func (p Point) CourierContact() string {
	return p.courierContact
}

// IsZero reports whether the point was never set.
func (p Point) IsZero() bool {
	return p.id == ""
}
