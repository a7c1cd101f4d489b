package application

import (
	"context"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// AnalyticsReport bundles the two analytics views served to the dashboard.
type AnalyticsReport struct {
	Revenue     []model.RevenuePoint
	Departments []model.DepartmentShare
}

// CatalogService serves the seeded reference catalogs (employees, documents,
// analytics). It depends only on port interfaces.
type CatalogService struct {
	employees driven.EmployeeStore
	documents driven.DocumentStore
	analytics driven.AnalyticsStore
}

// NewCatalogService creates a CatalogService with the required stores.
func NewCatalogService(employees driven.EmployeeStore, documents driven.DocumentStore, analytics driven.AnalyticsStore) *CatalogService {
	return &CatalogService{
		employees: employees,
		documents: documents,
		analytics: analytics,
	}
}

// ListEmployees returns the employee catalog.
func (s *CatalogService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.employees.ListAll(ctx)
}

// GetEmployee returns a single catalog employee, or (nil, nil) when the ID
// matches no entry.
func (s *CatalogService) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// ListDocuments returns the document catalog.
func (s *CatalogService) ListDocuments(ctx context.Context) ([]model.Document, error) {
	return s.documents.ListAll(ctx)
}

// GetDocument returns a single catalog document, or (nil, nil) when the ID
// matches no entry.
func (s *CatalogService) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	return s.documents.GetByID(ctx, id)
}

// Analytics assembles the analytics report from both store views.
func (s *CatalogService) Analytics(ctx context.Context) (*AnalyticsReport, error) {
	revenue, err := s.analytics.RevenueByMonth(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.analytics.DepartmentShares(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsReport{Revenue: revenue, Departments: departments}, nil
}
