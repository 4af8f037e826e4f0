package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
	"github.com/monoshop/storefront-gateway/internal/pkg/bus"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testBus() *bus.Bus {
	return bus.New()
}

// memCartStore is an in-memory CartStore.
type memCartStore struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]domain.Cart)}
}

func (s *memCartStore) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID], nil
}

func (s *memCartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cart
	return nil
}

func (s *memCartStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// memAuthStore is an in-memory AuthStore.
type memAuthStore struct {
	mu      sync.Mutex
	records map[string]*domain.Auth
}

func newMemAuthStore() *memAuthStore {
	return &memAuthStore{records: make(map[string]*domain.Auth)}
}

func (s *memAuthStore) Get(ctx context.Context, sessionID string) (*domain.Auth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[sessionID], nil
}

func (s *memAuthStore) Save(ctx context.Context, sessionID string, auth *domain.Auth) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = auth
	return nil
}

func (s *memAuthStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

// stubBackend implements ports.BackendClient with per-method function fields.
// Unset methods fail loudly via nil dereference, which is intentional: a test
// exercising a path must declare the calls it expects.
type stubBackend struct {
	listProductsFn   func(ctx context.Context) ([]domain.Product, error)
	getProductFn     func(ctx context.Context, id int64) (*domain.Product, error)
	loginFn          func(ctx context.Context, email, password string) (*domain.Auth, error)
	signupFn         func(ctx context.Context, input ports.SignupInput) (*domain.Auth, error)
	createOrderFn    func(ctx context.Context, token string, input ports.CreateOrderInput) (*ports.OrderCreated, error)
	getOrderFn       func(ctx context.Context, token string, id int64) (*domain.Order, error)
	listUserOrdersFn func(ctx context.Context, token string, userID int64) ([]domain.Order, error)
	preparePaymentFn func(ctx context.Context, token string, req ports.PreparePaymentRequest) (*ports.PreparedPayment, error)
	confirmPaymentFn func(ctx context.Context, channel string, req ports.ConfirmPaymentRequest) error
	adminListFn      func(ctx context.Context, token string) ([]domain.Product, error)
	adminCreateFn    func(ctx context.Context, token string, input ports.CreateProductInput) (*domain.Product, error)
	adminDeleteFn    func(ctx context.Context, token string, id int64) error
}

func (s *stubBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listProductsFn(ctx)
}

func (s *stubBackend) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getProductFn(ctx, id)
}

func (s *stubBackend) Login(ctx context.Context, email, password string) (*domain.Auth, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubBackend) Signup(ctx context.Context, input ports.SignupInput) (*domain.Auth, error) {
	return s.signupFn(ctx, input)
}

func (s *stubBackend) CreateOrder(ctx context.Context, token string, input ports.CreateOrderInput) (*ports.OrderCreated, error) {
	return s.createOrderFn(ctx, token, input)
}

func (s *stubBackend) GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error) {
	return s.getOrderFn(ctx, token, id)
}

func (s *stubBackend) ListUserOrders(ctx context.Context, token string, userID int64) ([]domain.Order, error) {
	return s.listUserOrdersFn(ctx, token, userID)
}

func (s *stubBackend) PreparePayment(ctx context.Context, token string, req ports.PreparePaymentRequest) (*ports.PreparedPayment, error) {
	return s.preparePaymentFn(ctx, token, req)
}

func (s *stubBackend) ConfirmPayment(ctx context.Context, channel string, req ports.ConfirmPaymentRequest) error {
	return s.confirmPaymentFn(ctx, channel, req)
}

func (s *stubBackend) AdminListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	return s.adminListFn(ctx, token)
}

func (s *stubBackend) AdminCreateProduct(ctx context.Context, token string, input ports.CreateProductInput) (*domain.Product, error) {
	return s.adminCreateFn(ctx, token, input)
}

func (s *stubBackend) AdminDeleteProduct(ctx context.Context, token string, id int64) error {
	return s.adminDeleteFn(ctx, token, id)
}

// stubProvider implements ports.PaymentProvider.
type stubProvider struct {
	name      string
	prepareFn func(ctx context.Context, input ports.PreparePaymentInput) (*ports.PaymentSession, error)
	confirmFn func(ctx context.Context, input ports.ConfirmPaymentInput) (*ports.PaymentConfirmation, error)
}

func (p *stubProvider) Name() string {
	if p.name == "" {
		return "stub"
	}
	return p.name
}

func (p *stubProvider) Prepare(ctx context.Context, input ports.PreparePaymentInput) (*ports.PaymentSession, error) {
	return p.prepareFn(ctx, input)
}

func (p *stubProvider) Confirm(ctx context.Context, input ports.ConfirmPaymentInput) (*ports.PaymentConfirmation, error) {
	return p.confirmFn(ctx, input)
}

// memJournal records journal transitions in memory.
type memJournal struct {
	mu       sync.Mutex
	pending  []*domain.PaymentRecord
	paid     []string
	failed   []string
	recordFn func(ctx context.Context, rec *domain.PaymentRecord) error
}

func newMemJournal() *memJournal {
	return &memJournal{}
}

func (j *memJournal) RecordPending(ctx context.Context, rec *domain.PaymentRecord) error {
	if j.recordFn != nil {
		return j.recordFn(ctx, rec)
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pending = append(j.pending, rec)
	return nil
}

func (j *memJournal) MarkPaid(ctx context.Context, orderNumber string, payload []byte) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.paid = append(j.paid, orderNumber)
	return nil
}

func (j *memJournal) MarkFailed(ctx context.Context, orderNumber string, payload []byte) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.failed = append(j.failed, orderNumber)
	return nil
}

func (j *memJournal) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.PaymentRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, rec := range j.pending {
		if rec.OrderNumber == orderNumber {
			return rec, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}
