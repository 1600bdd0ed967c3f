package ordering_test

import (
	"testing"

	"orderbot/internal/core/application/ordering"
	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Points around a customer at 55.0, 37.0. One degree of latitude is ~111.2 km.
const customerLat, customerLon = 55.0, 37.0

func latOffsetKm(km float64) float64 {
	return customerLat + km/111.19508
}

func TestFulfillmentResolver_Resolve(t *testing.T) {
	t.Run("should create a record for a nearby customer", func(t *testing.T) {
		ctx := testContext(t)
		geocoder := new(MockGeocoder)
		directory := new(MockDirectory)
		near := mustPoint(t, "near", latOffsetKm(0.3), customerLon)
		far := mustPoint(t, "far", latOffsetKm(8), customerLon)
		directory.On("ListFulfillmentPoints", ctx).Return([]fulfillment.Point{far, near}, nil).Once()
		directory.On("CreateCustomerRecord", ctx, mock.MatchedBy(func(r fulfillment.CustomerRecord) bool {
			return r.ChatID() == "42" && r.NearestPointID() == "near" && r.Address() == ""
		})).Return("rec-1", nil).Once()

		resolver := ordering.NewFulfillmentResolver(geocoder, directory, discardLogger())
		d, err := resolver.Resolve(ctx, "42", ordering.CoordinatesInput(mustLocation(t, customerLat, customerLon)))

		require.NoError(t, err)
		assert.True(t, d.IsResolved())
		assert.Equal(t, fulfillment.FreeOrPickup, d.Tier())
		assert.Equal(t, "rec-1", d.RecordID())
		assert.InDelta(t, 0.3, d.DisplayDistanceKm(), 1e-9)
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		directory.AssertExpectations(t)
	})

	t.Run("should reject a customer 21 km away without creating a record", func(t *testing.T) {
		ctx := testContext(t)
		directory := new(MockDirectory)
		directory.On("ListFulfillmentPoints", ctx).
			Return([]fulfillment.Point{mustPoint(t, "p", latOffsetKm(21), customerLon)}, nil).Once()

		resolver := ordering.NewFulfillmentResolver(new(MockGeocoder), directory, discardLogger())
		d, err := resolver.Resolve(ctx, "42", ordering.CoordinatesInput(mustLocation(t, customerLat, customerLon)))

		require.NoError(t, err)
		assert.False(t, d.IsResolved())
		assert.Equal(t, fulfillment.TooFar, d.Tier())
		assert.Empty(t, d.RecordID())
		assert.Contains(t, d.Prompt(), "21.0 km")
		directory.AssertNotCalled(t, "CreateCustomerRecord", mock.Anything, mock.Anything)
	})

	t.Run("should geocode typed addresses and keep the text on the record", func(t *testing.T) {
		ctx := testContext(t)
		geocoder := new(MockGeocoder)
		directory := new(MockDirectory)
		geocoder.On("Geocode", ctx, "Lenina 1").Return(mustLocation(t, customerLat, customerLon), nil).Once()
		directory.On("ListFulfillmentPoints", ctx).
			Return([]fulfillment.Point{mustPoint(t, "p", latOffsetKm(10), customerLon)}, nil).Once()
		directory.On("CreateCustomerRecord", ctx, mock.MatchedBy(func(r fulfillment.CustomerRecord) bool {
			return r.Address() == "Lenina 1"
		})).Return("rec-2", nil).Once()

		resolver := ordering.NewFulfillmentResolver(geocoder, directory, discardLogger())
		d, err := resolver.Resolve(ctx, "42", ordering.AddressInput(" Lenina 1 "))

		require.NoError(t, err)
		assert.Equal(t, fulfillment.PaidDelivery, d.Tier())
		assert.Equal(t, "Lenina 1", d.CustomerAddress())
		geocoder.AssertExpectations(t)
		directory.AssertExpectations(t)
	})

	t.Run("should return an unknown location when geocoding fails in any way", func(t *testing.T) {
		failures := []error{
			ports.ErrGeocodeUnresolved,
			errs.NewTransportError("geocoder", "geocode"),
			errs.NewDataError("geocoder", "pos"),
		}

		for _, failure := range failures {
			ctx := testContext(t)
			geocoder := new(MockGeocoder)
			directory := new(MockDirectory)
			geocoder.On("Geocode", ctx, "nowhere").Return(kernel.Location{}, failure).Once()

			resolver := ordering.NewFulfillmentResolver(geocoder, directory, discardLogger())
			d, err := resolver.Resolve(ctx, "42", ordering.AddressInput("nowhere"))

			require.NoError(t, err)
			assert.True(t, d.IsLocationUnknown())
			directory.AssertNotCalled(t, "ListFulfillmentPoints", mock.Anything)
		}
	})

	t.Run("should propagate backend failures", func(t *testing.T) {
		ctx := testContext(t)
		directory := new(MockDirectory)
		directory.On("ListFulfillmentPoints", ctx).Return(nil, errs.NewTransportError("commerce", "list points")).Once()

		resolver := ordering.NewFulfillmentResolver(new(MockGeocoder), directory, discardLogger())
		_, err := resolver.Resolve(ctx, "42", ordering.CoordinatesInput(mustLocation(t, customerLat, customerLon)))

		require.ErrorIs(t, err, errs.ErrTransport)
	})

	t.Run("should report an empty point list as a data error", func(t *testing.T) {
		ctx := testContext(t)
		directory := new(MockDirectory)
		directory.On("ListFulfillmentPoints", ctx).Return([]fulfillment.Point{}, nil).Once()

		resolver := ordering.NewFulfillmentResolver(new(MockGeocoder), directory, discardLogger())
		_, err := resolver.Resolve(ctx, "42", ordering.CoordinatesInput(mustLocation(t, customerLat, customerLon)))

		require.ErrorIs(t, err, errs.ErrData)
	})
}

func TestFulfillmentResolver_Reload(t *testing.T) {
	t.Run("should recompute the decision from the stored record", func(t *testing.T) {
		ctx := testContext(t)
		directory := new(MockDirectory)
		point := mustPoint(t, "p", latOffsetKm(3), customerLon)
		record, err := fulfillment.RestoreCustomerRecord("rec-1", "42", mustLocation(t, customerLat, customerLon), "Lenina 1", "p")
		require.NoError(t, err)
		mock.InOrder(
			directory.On("GetCustomerRecord", ctx, "rec-1").Return(record, nil).Once(),
			directory.On("GetFulfillmentPoint", ctx, "p").Return(point, nil).Once(),
		)

		resolver := ordering.NewFulfillmentResolver(new(MockGeocoder), directory, discardLogger())
		d, err := resolver.Reload(ctx, "rec-1")

		require.NoError(t, err)
		assert.Equal(t, fulfillment.LowCostDelivery, d.Tier())
		assert.Equal(t, "rec-1", d.RecordID())
		assert.Equal(t, "Lenina 1", d.CustomerAddress())
		directory.AssertExpectations(t)
	})

	t.Run("should fail without a pending record", func(t *testing.T) {
		resolver := ordering.NewFulfillmentResolver(new(MockGeocoder), new(MockDirectory), discardLogger())

		_, err := resolver.Reload(testContext(t), "")

		require.ErrorIs(t, err, errs.ErrData)
	})

	t.Run("should propagate lookup failures", func(t *testing.T) {
		ctx := testContext(t)
		directory := new(MockDirectory)
		directory.On("GetCustomerRecord", ctx, "rec-1").
			Return(fulfillment.CustomerRecord{}, errs.NewObjectNotFoundError("record", "rec-1")).Once()

		resolver := ordering.NewFulfillmentResolver(new(MockGeocoder), directory, discardLogger())
		_, err := resolver.Reload(ctx, "rec-1")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
