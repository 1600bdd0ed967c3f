package fulfillment

import (
	"fmt"
	"math"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// Mode is how the customer receives the order.
type Mode int

const (
	UnknownMode Mode = iota
	Delivery
	Pickup
)

func (m Mode) String() string {
	switch m {
	case Delivery:
		return "delivery"
	case Pickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Decision is the outcome of resolving a customer location. It is derived
// every time it is needed and never stored; only the Customer Location Record
// it led to is persisted.
//
// A Decision is either
//   - location unknown: the address could not be geocoded (Tier UnknownTier)
//   - rejected: the nearest point is too far (Tier TooFar)
//   - accepted: any other tier, with the record id once it was stored
type Decision struct {
	customer   kernel.Location
	tier       Tier
	point      Point
	distanceKm float64
	recordID   string
	address    string
}

// NewUnknownLocationDecision is returned when coordinates could not be obtained.
func NewUnknownLocationDecision() Decision {
	return Decision{tier: UnknownTier}
}

// NewDecision classifies the distance from the customer to the nearest point.
func NewDecision(customer kernel.Location, point Point, distanceKm float64) (Decision, error) {
	if err := customer.Validate(); err != nil {
		return Decision{}, err
	}
	if point.IsZero() {
		return Decision{}, errs.NewValueIsRequiredError("fulfillment point")
	}

	tier, err := ClassifyDistance(distanceKm)
	if err != nil {
		return Decision{}, err
	}

	return Decision{customer: customer, tier: tier, point: point, distanceKm: distanceKm}, nil
}

// WithRecord returns a copy carrying the id and the address text of the
// stored Customer Location Record.
func (d Decision) WithRecord(recordID, address string) Decision {
	d.recordID = recordID
	d.address = address
	return d
}

// Customer is where the customer wants the order.
func (d Decision) Customer() kernel.Location {
	return d.customer
}

func (d Decision) Tier() Tier {
	return d.tier
}

func (d Decision) Point() Point {
	return d.point
}

// DistanceKm is the exact great-circle distance.
func (d Decision) DistanceKm() float64 {
	return d.distanceKm
}

// DisplayDistanceKm is the distance rounded to 0.1 km.
func (d Decision) DisplayDistanceKm() float64 {
	return math.Round(d.distanceKm*10) / 10
}

func (d Decision) RecordID() string {
	return d.recordID
}

// CustomerAddress is the typed address; empty when coordinates were shared.
func (d Decision) CustomerAddress() string {
	return d.address
}

func (d Decision) IsResolved() bool {
	return d.tier.IsAccepted()
}

func (d Decision) IsLocationUnknown() bool {
	return d.tier == UnknownTier
}

// Prompt is the text shown to the customer for this decision.
func (d Decision) Prompt() string {
	switch d.tier {
	case TooFar:
		return fmt.Sprintf(
			"The nearest pizzeria is %.1f km away from you. Sorry, we cannot deliver that far.",
			d.DisplayDistanceKm(),
		)
	case PaidDelivery:
		return fmt.Sprintf(
			"The nearest pizzeria is %.1f km away from you at %s. Will you pick it up yourself, or shall we deliver it for %d?",
			d.DisplayDistanceKm(), d.point.Address(), PaidDeliveryFee,
		)
	case LowCostDelivery:
		return fmt.Sprintf(
			"The nearest pizzeria is %.1f km away from you at %s. Will you pick it up yourself, or shall we bring it by scooter for %d?",
			d.DisplayDistanceKm(), d.point.Address(), LowCostDeliveryFee,
		)
	case FreeOrPickup:
		return fmt.Sprintf(
			"You are very close! The nearest pizzeria is only %.1f km away from you at %s. Will you pick it up yourself, or shall we deliver it for free?",
			d.DisplayDistanceKm(), d.point.Address(),
		)
	default:
		return "We could not determine the coordinates. Please specify the address."
	}
}
