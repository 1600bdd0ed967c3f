package ordering_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func mustPoint(t *testing.T, id string, lat, lon float64) fulfillment.Point {
	t.Helper()
	p, err := fulfillment.NewPoint(id, "Address "+id, mustLocation(t, lat, lon), "courier-"+id)
	require.NoError(t, err)
	return p
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.Location), args.Error(1)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) ListFulfillmentPoints(ctx context.Context) ([]fulfillment.Point, error) {
	args := m.Called(ctx)
	points, _ := args.Get(0).([]fulfillment.Point)
	return points, args.Error(1)
}

func (m *MockDirectory) GetFulfillmentPoint(ctx context.Context, pointID string) (fulfillment.Point, error) {
	args := m.Called(ctx, pointID)
	return args.Get(0).(fulfillment.Point), args.Error(1)
}

func (m *MockDirectory) CreateCustomerRecord(ctx context.Context, record fulfillment.CustomerRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockDirectory) GetCustomerRecord(ctx context.Context, recordID string) (fulfillment.CustomerRecord, error) {
	args := m.Called(ctx, recordID)
	return args.Get(0).(fulfillment.CustomerRecord), args.Error(1)
}

// memoryCartStore is an in-memory backend cart. Line item ids are derived
// from product ids, quantities accumulate.
type memoryCartStore struct {
	mu       sync.Mutex
	prices   map[string]int64
	names    map[string]string
	carts    map[string][]string
	quantity map[string]map[string]int
	failGet  error
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{
		prices:   map[string]int64{"p-1": 500, "p-2": 650},
		names:    map[string]string{"p-1": "Pepperoni", "p-2": "Margherita"},
		carts:    map[string][]string{},
		quantity: map[string]map[string]int{},
	}
}

func (s *memoryCartStore) GetCart(_ context.Context, cartID string) (cart.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failGet != nil {
		return cart.Snapshot{}, s.failGet
	}

	var (
		items []cart.LineItem
		total int64
	)
	for _, productID := range s.carts[cartID] {
		qty := s.quantity[cartID][productID]
		item, err := cart.NewLineItem("li-"+productID, productID, s.names[productID], qty, s.prices[productID])
		if err != nil {
			return cart.Snapshot{}, err
		}
		items = append(items, item)
		total += int64(qty) * s.prices[productID]
	}
	return cart.NewSnapshot(cartID, items, total)
}

func (s *memoryCartStore) AddToCart(_ context.Context, cartID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prices[productID]; !ok {
		return errs.NewObjectNotFoundError("product", productID)
	}
	if s.quantity[cartID] == nil {
		s.quantity[cartID] = map[string]int{}
	}
	if s.quantity[cartID][productID] == 0 {
		s.carts[cartID] = append(s.carts[cartID], productID)
	}
	s.quantity[cartID][productID] += quantity
	return nil
}

func (s *memoryCartStore) RemoveFromCart(_ context.Context, cartID, lineItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, productID := range s.carts[cartID] {
		if "li-"+productID == lineItemID {
			s.carts[cartID] = append(s.carts[cartID][:i], s.carts[cartID][i+1:]...)
			delete(s.quantity[cartID], productID)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("line item", fmt.Sprint(lineItemID))
}
