package driven

import (
	"context"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
)

// SalesOrderClient defines the driven port for reading sales orders from the
// remote SAP OData service. Implementations authenticate each call with the
// credentials they were constructed with; credential lifecycle lives in the
// application layer.
type SalesOrderClient interface {
	// Probe issues the minimal connectivity check ($top=1). It returns nil
	// only when the remote system answered with a well-formed success; every
	// failure is a classified error, never a false-but-nil result.
	Probe(ctx context.Context) error

	// ListOrders fetches up to top orders with line items expanded, ordered
	// by creation date descending. Records are returned in remote order,
	// unmodified.
	ListOrders(ctx context.Context, top int) ([]model.SalesOrder, error)

	// GetOrder fetches a single order with expanded line items.
	// Returns ErrNotFound when no order exists under the given ID.
	GetOrder(ctx context.Context, id string) (*model.SalesOrder, error)

	// ListOrdersByCustomer fetches orders for one sold-to party, newest first.
	ListOrdersByCustomer(ctx context.Context, soldToParty string) ([]model.SalesOrder, error)
}
