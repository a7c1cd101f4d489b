package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// ClientFactory builds a SalesOrderClient bound to the given credentials.
// The composition root passes the sap adapter constructor; tests pass mocks.
type ClientFactory func(creds model.Credentials) driven.SalesOrderClient

// OrderListing is the two-variant result of a listing call. Mode makes the
// demo-vs-authenticated branch explicit at the call site: demo listings are
// produced without any network activity.
type OrderListing struct {
	Mode   model.ConnectionMode
	Orders []model.SalesOrder
}

// ConnectionState is the derived session state: Connected holds only while
// credentials are present and the most recent verification succeeded.
type ConnectionState struct {
	Mode      model.ConnectionMode
	Connected bool
	APIURL    string
	Username  string
}

// OrderService owns the session's single credential slot and serves sales
// orders either from the remote system (credentials set) or from the built-in
// sample data (no credentials). A mutex guards the slot; overlapping
// SetCredentials calls resolve last-write-wins with no ordering guarantee
// between in-flight fetches.
type OrderService struct {
	mu        sync.RWMutex
	creds     *model.Credentials
	verified  bool
	client    driven.SalesOrderClient
	newClient ClientFactory
	logger    *slog.Logger
}

// NewOrderService creates an OrderService with no credentials configured.
func NewOrderService(newClient ClientFactory, logger *slog.Logger) *OrderService {
	return &OrderService{
		newClient: newClient,
		logger:    logger,
	}
}

// SetCredentials replaces any existing credential set unconditionally and
// resets the verified flag; the session is not considered connected until the
// next TestConnection succeeds. Field contents are not validated here beyond
// what the connection form already enforced.
func (s *OrderService) SetCredentials(username, password, apiURL string) {
	creds := model.Credentials{Username: username, Password: password, APIURL: apiURL}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &creds
	s.verified = false
	s.client = s.newClient(creds)

	s.logger.Info("sap credentials set", "username", username, "api_url", apiURL)
}

// ClearCredentials drops the credential slot and returns the session to demo
// mode. Idempotent; safe to call when already empty.
func (s *OrderService) ClearCredentials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return
	}
	s.creds = nil
	s.verified = false
	s.client = nil

	s.logger.Info("sap credentials cleared")
}

// HasCredentials reports whether a credential set is configured. Pure
// predicate, no side effects.
func (s *OrderService) HasCredentials() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds != nil
}

// ConnectionState returns the derived session state.
func (s *OrderService) ConnectionState() ConnectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds == nil {
		return ConnectionState{Mode: model.ModeDemo}
	}
	return ConnectionState{
		Mode:      model.ModeAuthenticated,
		Connected: s.verified,
		APIURL:    s.creds.APIURL,
		Username:  s.creds.Username,
	}
}

// TestConnection verifies the stored credentials with a minimal probe.
// It returns nil only on a confirmed success; every failure path is an error,
// so a caller can never transition to connected on a silent failure. A failed
// probe does not clear the stored credentials.
func (s *OrderService) TestConnection(ctx context.Context) error {
	client, err := s.currentClient()
	if err != nil {
		return err
	}

	if err := client.Probe(ctx); err != nil {
		s.mu.Lock()
		s.verified = false
		s.mu.Unlock()
		return fmt.Errorf("connection test: %w", err)
	}

	s.mu.Lock()
	s.verified = true
	s.mu.Unlock()

	s.logger.Info("sap connection verified")
	return nil
}

// ListOrders returns up to top orders. With no credentials it serves the
// complete sample set without touching the network; top only bounds remote
// fetches. With credentials it fetches from the remote system and propagates
// any failure as-is. A failed authenticated request never falls back to
// sample data.
func (s *OrderService) ListOrders(ctx context.Context, top int) (OrderListing, error) {
	if top <= 0 {
		return OrderListing{}, fmt.Errorf("top must be positive, got %d", top)
	}

	client, err := s.currentClient()
	if err != nil {
		return OrderListing{Mode: model.ModeDemo, Orders: SampleOrders()}, nil
	}

	orders, err := client.ListOrders(ctx, top)
	if err != nil {
		return OrderListing{}, err
	}
	return OrderListing{Mode: model.ModeAuthenticated, Orders: orders}, nil
}

// GetOrder returns a single order by ID. Demo mode serves from the sample
// set; authenticated mode fetches from the remote system.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*model.SalesOrder, error) {
	client, err := s.currentClient()
	if err != nil {
		for _, order := range SampleOrders() {
			if order.ID == id {
				return &order, nil
			}
		}
		return nil, fmt.Errorf("sales order %q: %w", id, driven.ErrNotFound)
	}

	return client.GetOrder(ctx, id)
}

// ListOrdersByCustomer returns all orders for one sold-to party. Demo mode
// filters the sample set.
func (s *OrderService) ListOrdersByCustomer(ctx context.Context, soldToParty string) (OrderListing, error) {
	client, err := s.currentClient()
	if err != nil {
		var matched []model.SalesOrder
		for _, order := range SampleOrders() {
			if order.SoldToParty == soldToParty {
				matched = append(matched, order)
			}
		}
		return OrderListing{Mode: model.ModeDemo, Orders: matched}, nil
	}

	orders, err := client.ListOrdersByCustomer(ctx, soldToParty)
	if err != nil {
		return OrderListing{}, err
	}
	return OrderListing{Mode: model.ModeAuthenticated, Orders: orders}, nil
}

// currentClient returns the client for the configured credentials, or
// ErrMissingCredentials when the session is in demo mode.
func (s *OrderService) currentClient() (driven.SalesOrderClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return nil, driven.ErrMissingCredentials
	}
	return s.client, nil
}
