package ordering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/services"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"
)

// RawLocation is what the customer sent: typed address text or shared coordinates.
type RawLocation struct {
	address     string
	coordinates kernel.Location
}

// AddressInput wraps typed address text.
func AddressInput(address string) RawLocation {
	return RawLocation{address: strings.TrimSpace(address)}
}

// CoordinatesInput wraps shared coordinates.
func CoordinatesInput(location kernel.Location) RawLocation {
	return RawLocation{coordinates: location}
}

func (r RawLocation) Address() string {
	return r.address
}

func (r RawLocation) HasCoordinates() bool {
	return r.coordinates.Validate() == nil
}

// FulfillmentResolver turns a raw customer location into a delivery Decision
// and stores a Customer Location Record for accepted ones.
type FulfillmentResolver struct {
	geocoder  ports.Geocoder
	directory ports.FulfillmentDirectory
	locator   services.PointLocator
	logger    *slog.Logger
}

// NewFulfillmentResolver creates a resolver.
func NewFulfillmentResolver(
	geocoder ports.Geocoder,
	directory ports.FulfillmentDirectory,
	logger *slog.Logger,
) *FulfillmentResolver {
	return &FulfillmentResolver{
		geocoder:  geocoder,
		directory: directory,
		locator:   services.NewPointLocator(),
		logger:    logger.With("component", "fulfillment_resolver"),
	}
}

// Resolve geocodes text if needed, finds the nearest point and classifies the
// distance. Geocoding failures of any kind give an unknown-location Decision.
// Too far gives a rejected Decision and no record. Accepted decisions carry
// the id of the record created for chatID.
func (r *FulfillmentResolver) Resolve(ctx context.Context, chatID string, raw RawLocation) (fulfillment.Decision, error) {
	customer, ok := r.coordinates(ctx, chatID, raw)
	if !ok {
		return fulfillment.NewUnknownLocationDecision(), nil
	}

	points, err := r.directory.ListFulfillmentPoints(ctx)
	if err != nil {
		return fulfillment.Decision{}, fmt.Errorf("list fulfillment points: %w", err)
	}

	decision, err := r.locator.Locate(customer, points)
	if errors.Is(err, services.ErrNoFulfillmentPoints) {
		return fulfillment.Decision{}, errs.NewDataErrorWithCause("commerce", "fulfillment points", err)
	}
	if err != nil {
		return fulfillment.Decision{}, err
	}

	if !decision.IsResolved() {
		r.logger.InfoContext(ctx, "customer is too far",
			"chat_id", chatID,
			"point_id", decision.Point().ID(),
			"distance_km", decision.DisplayDistanceKm())
		return decision, nil
	}

	record, err := fulfillment.NewCustomerRecord(chatID, customer, raw.Address(), decision.Point().ID())
	if err != nil {
		return fulfillment.Decision{}, err
	}

	recordID, err := r.directory.CreateCustomerRecord(ctx, record)
	if err != nil {
		return fulfillment.Decision{}, fmt.Errorf("create customer record: %w", err)
	}

	r.logger.InfoContext(ctx, "customer location accepted",
		"chat_id", chatID,
		"record_id", recordID,
		"tier", decision.Tier().String())

	return decision.WithRecord(recordID, raw.Address()), nil
}

// Reload rebuilds the Decision of a stored Customer Location Record. Tiers are
// never stored, so they are derived again from the record and its point.
func (r *FulfillmentResolver) Reload(ctx context.Context, recordID string) (fulfillment.Decision, error) {
	if recordID == "" {
		return fulfillment.Decision{}, errs.NewDataError("session", "pending customer record id")
	}

	record, err := r.directory.GetCustomerRecord(ctx, recordID)
	if err != nil {
		return fulfillment.Decision{}, fmt.Errorf("read customer record %s: %w", recordID, err)
	}

	point, err := r.directory.GetFulfillmentPoint(ctx, record.NearestPointID())
	if err != nil {
		return fulfillment.Decision{}, fmt.Errorf("read fulfillment point %s: %w", record.NearestPointID(), err)
	}

	decision, err := r.locator.Assess(record.Location(), point)
	if err != nil {
		return fulfillment.Decision{}, err
	}

	return decision.WithRecord(record.ID(), record.Address()), nil
}

func (r *FulfillmentResolver) coordinates(ctx context.Context, chatID string, raw RawLocation) (kernel.Location, bool) {
	if raw.HasCoordinates() {
		return raw.coordinates, true
	}

	if raw.Address() == "" {
		return kernel.Location{}, false
	}

	loc, err := r.geocoder.Geocode(ctx, raw.Address())
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, ports.ErrGeocodeUnresolved) {
			level = slog.LevelInfo
		}
		r.logger.Log(ctx, level, "address not resolved", "chat_id", chatID, "address", raw.Address(), "error", err)
		return kernel.Location{}, false
	}

	return loc, true
}
