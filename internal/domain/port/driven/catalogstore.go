package driven

import (
	"context"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
)

// EmployeeStore defines the driven port for the employee reference catalog.
// GetByID returns (nil, nil) when no entry exists under the ID.
type EmployeeStore interface {
	ListAll(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id string) (*model.Employee, error)
}

// DocumentStore defines the driven port for the document reference catalog.
// GetByID returns (nil, nil) when no entry exists under the ID.
type DocumentStore interface {
	ListAll(ctx context.Context) ([]model.Document, error)
	GetByID(ctx context.Context, id string) (*model.Document, error)
}

// AnalyticsStore defines the driven port for dashboard analytics data.
type AnalyticsStore interface {
	RevenueByMonth(ctx context.Context) ([]model.RevenuePoint, error)
	DepartmentShares(ctx context.Context) ([]model.DepartmentShare, error)
}
