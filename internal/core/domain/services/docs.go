// Package services provides domain services that work across several domain
// objects of the ordering bot.
//
// The package includes:
//   - PointLocator: finds the fulfillment point nearest to a customer and
//     classifies the distance into a delivery tier
package services
