// Package fulfillment holds the delivery policy: fulfillment points, the
// distance tiers with their fees, the Decision derived for a customer and the
// Customer Location Record stored once a location is accepted.
package fulfillment
