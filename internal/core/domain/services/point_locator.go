package services

import (
	"errors"
	"math"

	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/kernel"
)

// ErrNoFulfillmentPoints is returned when the backend has no points to compare against.
var ErrNoFulfillmentPoints = errors.New("no fulfillment points")

// PointLocator is a domain service that finds the fulfillment point nearest to
// a customer and derives the delivery Decision for it.
//
// Business rules:
//   - Distance is the great-circle distance on the mean earth radius
//   - The point with the minimum distance wins
//   - Ties keep the point listed first
//   - The tier is computed on the exact distance
//
// Example usage:
//
//	locator := NewPointLocator()
//	decision, err := locator.Locate(customer, points)
//	if errors.Is(err, ErrNoFulfillmentPoints) {
//	    // Backend has no pizzerias configured
//	    return
//	}
//	if !decision.IsResolved() {
//	    // Too far, no record must be created
//	}
type PointLocator struct{}

// NewPointLocator creates a new PointLocator instance.
func NewPointLocator() PointLocator {
	return PointLocator{}
}

// Locate returns the Decision for a customer at the given location.
//
// Returns:
//   - fulfillment.Decision: tier, nearest point and exact distance
//   - error: ErrNoFulfillmentPoints for an empty list, or validation errors
func (l PointLocator) Locate(customer kernel.Location, points []fulfillment.Point) (fulfillment.Decision, error) {
	if err := customer.Validate(); err != nil {
		return fulfillment.Decision{}, err
	}

	nearest, distance, err := l.findNearest(customer, points)
	if err != nil {
		return fulfillment.Decision{}, err
	}

	return fulfillment.NewDecision(customer, nearest, distance)
}

// findNearest scans every point and keeps the first one with the minimum distance.
func (l PointLocator) findNearest(customer kernel.Location, points []fulfillment.Point) (fulfillment.Point, float64, error) {
	var (
		bestPoint    fulfillment.Point
		bestDistance = math.MaxFloat64
	)

	for _, p := range points {
		d, err := customer.DistanceKm(p.Location())
		if err != nil {
			return fulfillment.Point{}, 0, err
		}

		if d < bestDistance {
			bestDistance = d
			bestPoint = p
		}
	}

	if bestPoint.IsZero() {
		return fulfillment.Point{}, 0, ErrNoFulfillmentPoints
	}

	return bestPoint, bestDistance, nil
}

// Assess derives the Decision for a customer already bound to a point, e.g.
// when a stored Customer Location Record is read back.
func (l PointLocator) Assess(customer kernel.Location, point fulfillment.Point) (fulfillment.Decision, error) {
	d, err := customer.DistanceKm(point.Location())
	if err != nil {
		return fulfillment.Decision{}, err
	}

	return fulfillment.NewDecision(customer, point, d)
}
