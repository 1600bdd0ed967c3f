package fulfillment

import (
	"fmt"
	"math"

	"orderbot/internal/pkg/errs"
)

// Distance thresholds in kilometers. A distance equal to a threshold belongs
// to the nearer tier.
const (
	MaxDeliveryKm = 20.0
	PaidTierKm    = 5.0
	FreeTierKm    = 0.5
)

// Delivery fees per tier in backend currency units.
const (
	PaidDeliveryFee    int64 = 300
	LowCostDeliveryFee int64 = 100
	FreeDeliveryFee    int64 = 0
)

// Tier is the delivery policy bucket a customer falls into based on the
// distance to the nearest fulfillment point.
//
//	(20, ∞)   TooFar           rejected
//	(5, 20]   PaidDelivery     fee 300
//	(0.5, 5]  LowCostDelivery  fee 100
//	[0, 0.5]  FreeOrPickup     fee 0
type Tier int

const (
	// UnknownTier means no distance is known (coordinates were not resolved).
	UnknownTier Tier = iota
	TooFar
	PaidDelivery
	LowCostDelivery
	FreeOrPickup
)

func getTierStrings() map[Tier]string {
	return map[Tier]string{
		UnknownTier:     "unknown",
		TooFar:          "too_far",
		PaidDelivery:    "paid_delivery",
		LowCostDelivery: "low_cost_delivery",
		FreeOrPickup:    "free_or_pickup",
	}
}

// ClassifyDistance maps an exact distance in kilometers to its tier.
// Negative or NaN distances are rejected.
func ClassifyDistance(km float64) (Tier, error) {
	if math.IsNaN(km) || km < 0 {
		return UnknownTier, errs.NewValueIsInvalidErrorWithCause(
			"distance is invalid",
			fmt.Errorf("%v is not a non-negative number", km),
		)
	}

	switch {
	case km > MaxDeliveryKm:
		return TooFar, nil
	case km > PaidTierKm:
		return PaidDelivery, nil
	case km > FreeTierKm:
		return LowCostDelivery, nil
	default:
		return FreeOrPickup, nil
	}
}

func (t Tier) String() string {
	if s, ok := getTierStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// IsAccepted reports whether the tier allows checkout to continue.
func (t Tier) IsAccepted() bool {
	return t == PaidDelivery || t == LowCostDelivery || t == FreeOrPickup
}

// DeliveryFee returns the fee for accepted tiers and 0 otherwise.
func (t Tier) DeliveryFee() int64 {
	switch t {
	case PaidDelivery:
		return PaidDeliveryFee
	case LowCostDelivery:
		return LowCostDeliveryFee
	case FreeOrPickup:
		return FreeDeliveryFee
	default:
		return 0
	}
}
