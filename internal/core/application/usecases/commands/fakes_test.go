package commands_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/cart"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/dialog"
	"orderbot/internal/core/domain/model/fulfillment"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/outbound"
	"orderbot/internal/core/domain/model/reminder"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// store is an in-memory database shared by every fakeUoW it creates.
// Changes become visible only on Commit.
type store struct {
	mu        sync.Mutex
	sessions  map[string]dialog.Session
	reminders map[string]*reminder.Reminder
	commits   int
	failSave  error
	openTx    int
}

// openTransactions is the number of units of work between Begin and
// Commit or Rollback.
func (s *store) openTransactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openTx
}

func newStore() *store {
	return &store{sessions: map[string]dialog.Session{}, reminders: map[string]*reminder.Reminder{}}
}

func (s *store) Create() commands.DialogUoW {
	return &fakeUoW{store: s}
}

func (s *store) session(t *testing.T, chatID string) *dialog.Session {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.sessions[chatID]
	require.True(t, ok, "session %s not stored", chatID)
	return &stored
}

func (s *store) put(t *testing.T, chatID string, state dialog.State, recordID, viewed string) {
	t.Helper()
	session, err := dialog.RestoreSession(chatID, state, recordID, viewed)
	require.NoError(t, err)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = *session
}

type fakeUoW struct {
	store     *store
	sessions  map[string]dialog.Session
	reminders []*reminder.Reminder
	active    bool
}

func (u *fakeUoW) Begin(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.openTx++
	u.active = true
	u.sessions = map[string]dialog.Session{}
	return nil
}

func (u *fakeUoW) Commit(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for k, v := range u.sessions {
		u.store.sessions[k] = v
	}
	for _, r := range u.reminders {
		u.store.reminders[r.ID().String()] = r
	}
	u.store.commits++
	u.store.openTx--
	u.active = false
	return nil
}

func (u *fakeUoW) Rollback(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	if u.active {
		u.store.openTx--
	}
	u.active = false
	return nil
}

func (u *fakeUoW) SessionRepository() ports.SessionRepository   { return fakeSessions{u} }
func (u *fakeUoW) ReminderRepository() ports.ReminderRepository { return fakeReminders{u} }

type fakeSessions struct{ uow *fakeUoW }

func (r fakeSessions) Get(_ context.Context, chatID string) (*dialog.Session, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()
	s, ok := r.uow.store.sessions[chatID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("chat id", chatID)
	}
	return &s, nil
}

func (r fakeSessions) Save(_ context.Context, s *dialog.Session) error {
	if r.uow.store.failSave != nil {
		return r.uow.store.failSave
	}
	r.uow.sessions[s.ChatID()] = *s
	return nil
}

type fakeReminders struct{ uow *fakeUoW }

func (r fakeReminders) Add(_ context.Context, rem *reminder.Reminder) error {
	r.uow.reminders = append(r.uow.reminders, rem)
	return nil
}

func (r fakeReminders) Update(context.Context, *reminder.Reminder) error { return nil }

func (r fakeReminders) Get(context.Context, kernel.UUID) (*reminder.Reminder, error) {
	return nil, errs.NewObjectNotFoundError("reminder", nil)
}

func (r fakeReminders) GetDue(context.Context, time.Time, int) ([]*reminder.Reminder, error) {
	return nil, nil
}

// recordingMessenger keeps every outbound message in order.
type recordingMessenger struct {
	mu       sync.Mutex
	sent     []outbound.Message
	answers  []string
	failText error
}

func (m *recordingMessenger) record(msg outbound.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

func (m *recordingMessenger) SendText(_ context.Context, msg outbound.Text) error {
	if m.failText != nil {
		return m.failText
	}
	m.record(msg)
	return nil
}

func (m *recordingMessenger) SendPhoto(_ context.Context, msg outbound.Photo) error {
	m.record(msg)
	return nil
}

func (m *recordingMessenger) SendLocation(_ context.Context, msg outbound.Pin) error {
	m.record(msg)
	return nil
}

func (m *recordingMessenger) DeleteMessage(_ context.Context, msg outbound.Delete) error {
	m.record(msg)
	return nil
}

func (m *recordingMessenger) SendInvoice(_ context.Context, msg outbound.Invoice) error {
	m.record(msg)
	return nil
}

func (m *recordingMessenger) AnswerPreCheckout(_ context.Context, queryID string, ok bool, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, fmt.Sprintf("%s:%t:%s", queryID, ok, errorMessage))
	return nil
}

// content returns sent messages except deletions.
func (m *recordingMessenger) content() []outbound.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []outbound.Message
	for _, msg := range m.sent {
		if _, ok := msg.(outbound.Delete); !ok {
			out = append(out, msg)
		}
	}
	return out
}

func (m *recordingMessenger) deletions() []outbound.Delete {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []outbound.Delete
	for _, msg := range m.sent {
		if d, ok := msg.(outbound.Delete); ok {
			out = append(out, d)
		}
	}
	return out
}

func (m *recordingMessenger) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}

// fakeCommerce is an in-memory commerce backend.
type fakeCommerce struct {
	mu       sync.Mutex
	products []catalog.Product
	points   []fulfillment.Point
	records  map[string]fulfillment.CustomerRecord
	carts    map[string]map[string]int
	failAll  error
	calls    int
	ids      []string
}

func newFakeCommerce(t *testing.T) *fakeCommerce {
	t.Helper()
	p1, err := catalog.NewProduct("p-1", "Pepperoni", "Spicy", 500, "https://img/p-1.png")
	require.NoError(t, err)
	p2, err := catalog.NewProduct("p-2", "Margherita", "Classic", 650, "")
	require.NoError(t, err)
	loc, err := kernel.NewLocation(pointLat, pointLon)
	require.NoError(t, err)
	pt, err := fulfillment.NewPoint("pt-1", "Tverskaya 1", loc, "courier-1")
	require.NoError(t, err)

	return &fakeCommerce{
		products: []catalog.Product{p1, p2},
		points:   []fulfillment.Point{pt},
		records:  map[string]fulfillment.CustomerRecord{},
		carts:    map[string]map[string]int{},
	}
}

func (c *fakeCommerce) enter() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.failAll
}

// lookup records a product or line-item id the backend was asked about.
func (c *fakeCommerce) lookup(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = append(c.ids, id)
}

func (c *fakeCommerce) lookedUp() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ids...)
}

func (c *fakeCommerce) product(id string) (catalog.Product, bool) {
	for _, p := range c.products {
		if p.ID() == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (c *fakeCommerce) ListProducts(context.Context) ([]catalog.Product, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	return c.products, nil
}

func (c *fakeCommerce) GetProduct(_ context.Context, id string) (catalog.Product, error) {
	c.lookup(id)
	if err := c.enter(); err != nil {
		return catalog.Product{}, err
	}
	p, ok := c.product(id)
	if !ok {
		return catalog.Product{}, errs.NewObjectNotFoundError("product", id)
	}
	return p, nil
}

func (c *fakeCommerce) GetCart(_ context.Context, cartID string) (cart.Snapshot, error) {
	if err := c.enter(); err != nil {
		return cart.Snapshot{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.carts[cartID]))
	for id := range c.carts[cartID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		items []cart.LineItem
		total int64
	)
	for _, id := range ids {
		p, _ := c.product(id)
		qty := c.carts[cartID][id]
		item, err := cart.NewLineItem("li-"+id, id, p.Name(), qty, p.Price())
		if err != nil {
			return cart.Snapshot{}, err
		}
		items = append(items, item)
		total += int64(qty) * p.Price()
	}
	return cart.NewSnapshot(cartID, items, total)
}

func (c *fakeCommerce) AddToCart(_ context.Context, cartID, productID string, quantity int) error {
	c.lookup(productID)
	if err := c.enter(); err != nil {
		return err
	}
	if _, ok := c.product(productID); !ok {
		return errs.NewObjectNotFoundError("product", productID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.carts[cartID] == nil {
		c.carts[cartID] = map[string]int{}
	}
	c.carts[cartID][productID] += quantity
	return nil
}

func (c *fakeCommerce) RemoveFromCart(_ context.Context, cartID, lineItemID string) error {
	c.lookup(lineItemID)
	if err := c.enter(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range c.carts[cartID] {
		if "li-"+id == lineItemID {
			delete(c.carts[cartID], id)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("line item", lineItemID)
}

func (c *fakeCommerce) ListFulfillmentPoints(context.Context) ([]fulfillment.Point, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	return c.points, nil
}

func (c *fakeCommerce) GetFulfillmentPoint(_ context.Context, id string) (fulfillment.Point, error) {
	if err := c.enter(); err != nil {
		return fulfillment.Point{}, err
	}
	for _, p := range c.points {
		if p.ID() == id {
			return p, nil
		}
	}
	return fulfillment.Point{}, errs.NewObjectNotFoundError("fulfillment point", id)
}

func (c *fakeCommerce) CreateCustomerRecord(_ context.Context, r fulfillment.CustomerRecord) (string, error) {
	if err := c.enter(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id := fmt.Sprintf("rec-%d", len(c.records)+1)
	stored, err := fulfillment.RestoreCustomerRecord(id, r.ChatID(), r.Location(), r.Address(), r.NearestPointID())
	if err != nil {
		return "", err
	}
	c.records[id] = stored
	return id, nil
}

func (c *fakeCommerce) GetCustomerRecord(_ context.Context, id string) (fulfillment.CustomerRecord, error) {
	if err := c.enter(); err != nil {
		return fulfillment.CustomerRecord{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.records[id]
	if !ok {
		return fulfillment.CustomerRecord{}, errs.NewObjectNotFoundError("customer record", id)
	}
	return r, nil
}

func (c *fakeCommerce) recordCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// fakeGeocoder knows a fixed set of addresses.
type fakeGeocoder struct {
	known map[string]kernel.Location
}

func (g fakeGeocoder) Geocode(_ context.Context, address string) (kernel.Location, error) {
	loc, ok := g.known[address]
	if !ok {
		return kernel.Location{}, ports.ErrGeocodeUnresolved
	}
	return loc, nil
}
