package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/sapdash/internal/adapter/driving/http"
	"github.com/ericfisherdev/sapdash/internal/application"
	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubOrderClient is the minimal driven.SalesOrderClient the session tests
// need: a configurable probe outcome and an empty listing.
type stubOrderClient struct {
	probeErr error
}

func (s *stubOrderClient) Probe(_ context.Context) error { return s.probeErr }

func (s *stubOrderClient) ListOrders(_ context.Context, _ int) ([]model.SalesOrder, error) {
	return nil, nil
}

func (s *stubOrderClient) GetOrder(_ context.Context, _ string) (*model.SalesOrder, error) {
	return nil, driven.ErrNotFound
}

func (s *stubOrderClient) ListOrdersByCustomer(_ context.Context, _ string) ([]model.SalesOrder, error) {
	return nil, nil
}

func newTestOrderService(probeErr error) *application.OrderService {
	factory := func(_ model.Credentials) driven.SalesOrderClient {
		return &stubOrderClient{probeErr: probeErr}
	}
	return application.NewOrderService(factory, testLogger())
}

// memCatalog backs all three catalog ports with fixed in-memory data.
type memCatalog struct {
	employees []model.Employee
	documents []model.Document
	revenue   []model.RevenuePoint
	shares    []model.DepartmentShare
	err       error
}

func (m *memCatalog) ListAll(_ context.Context) ([]model.Employee, error) {
	return m.employees, m.err
}

func (m *memCatalog) GetByID(_ context.Context, id string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

type memDocuments struct{ catalog *memCatalog }

func (m memDocuments) ListAll(_ context.Context) ([]model.Document, error) {
	return m.catalog.documents, m.catalog.err
}

func (m memDocuments) GetByID(_ context.Context, id string) (*model.Document, error) {
	for _, d := range m.catalog.documents {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, nil
}

type memAnalytics struct{ catalog *memCatalog }

func (m memAnalytics) RevenueByMonth(_ context.Context) ([]model.RevenuePoint, error) {
	return m.catalog.revenue, m.catalog.err
}

func (m memAnalytics) DepartmentShares(_ context.Context) ([]model.DepartmentShare, error) {
	return m.catalog.shares, m.catalog.err
}

var testCatalog = memCatalog{
	employees: []model.Employee{
		{
			ID:         "EMP001",
			FirstName:  "Anna",
			LastName:   "Schmidt",
			Email:      "anna.schmidt@example.com",
			Department: "Sales",
			Position:   "Account Executive",
			HireDate:   time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:     "Active",
		},
	},
	documents: []model.Document{
		{
			ID:          "DOC001",
			Title:       "Q1 Sales Report",
			Type:        "PDF",
			CreatedBy:   "Anna Schmidt",
			CreatedDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			Status:      "Final",
			SizeBytes:   482133,
		},
	},
	revenue: []model.RevenuePoint{{Month: "Jan", Value: 45000}},
	shares:  []model.DepartmentShare{{Name: "Sales", Percentage: 40}},
}

func catalogServiceFor(c *memCatalog) *application.CatalogService {
	return application.NewCatalogService(c, memDocuments{c}, memAnalytics{c})
}

func newTestCatalogService() *application.CatalogService {
	c := testCatalog
	return catalogServiceFor(&c)
}

// sessionFixture wires the full mux around a real OrderService so the session
// endpoints exercise the same state machine the process runs with.
func newSessionMux(probeErr error) http.Handler {
	factory := func(_ model.Credentials) httphandler.GatewayClient {
		return &mockGatewayClient{probeErr: probeErr}
	}
	h := httphandler.NewHandler(newTestOrderService(probeErr), newTestCatalogService(), factory, testLogger())
	return httphandler.NewServeMux(h, testLogger())
}

func doJSON(t *testing.T, mux http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	}
	return rec, decoded
}

func TestGetConnection_DefaultsToDemo(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/connection", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo", body["mode"])
	assert.Equal(t, false, body["connected"])
}

func TestConnect_Success(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/v1/connection",
		`{"username":"user","password":"pass","apiUrl":"https://sap.example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	rec, body = doJSON(t, mux, http.MethodGet, "/api/v1/connection", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "authenticated", body["mode"])
	assert.Equal(t, true, body["connected"])
	assert.Equal(t, "user", body["username"])
}

func TestConnect_MissingFields(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/v1/connection", `{"username":"user"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required credentials", body["error"])
}

func TestConnect_AuthenticationFailure(t *testing.T) {
	mux := newSessionMux(driven.ErrAuthentication)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/v1/connection",
		`{"username":"user","password":"wrong","apiUrl":"https://sap.example.com"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])

	// Credentials stay set but the session is not connected.
	rec, body = doJSON(t, mux, http.MethodGet, "/api/v1/connection", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["connected"])
	assert.Equal(t, "authenticated", body["mode"])
}

func TestDisconnect(t *testing.T) {
	mux := newSessionMux(nil)

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/v1/connection",
		`{"username":"user","password":"pass","apiUrl":"https://sap.example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, mux, http.MethodDelete, "/api/v1/connection", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/connection", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo", body["mode"])
}

func TestSessionListOrders_DemoResponse(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo", body["mode"])

	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), summary["order_count"])
	assert.Equal(t, "56950.00", summary["total_value"])

	orders, ok := body["orders"].([]any)
	require.True(t, ok)
	require.Len(t, orders, 3)

	first, ok := orders[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ABC Corporation", first["sold_to_party_name"])

	status, ok := first["delivery_status"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", status["code"])
	assert.Equal(t, "Not Processed", status["label"])
	assert.Equal(t, "#f59e0b", status["color"])

	// Raw wire date plus its rendered display form.
	assert.Contains(t, first["creation_date"], "/Date(")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, first["creation_date_display"])
}

func TestSessionListOrders_InvalidTop(t *testing.T) {
	mux := newSessionMux(nil)

	rec, _ := doJSON(t, mux, http.MethodGet, "/api/v1/orders?top=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionListOrders_CustomerFilter(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/orders?customer=0000100002", "")

	require.Equal(t, http.StatusOK, rec.Code)
	orders, ok := body["orders"].([]any)
	require.True(t, ok)
	require.Len(t, orders, 1)
	first := orders[0].(map[string]any)
	assert.Equal(t, "XYZ Industries", first["sold_to_party_name"])
}

func TestSessionGetOrder(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/orders/0000000001", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ABC Corporation", body["sold_to_party_name"])
	require.NotEmpty(t, body["items"])
}

func TestSessionGetOrder_NotFound(t *testing.T) {
	mux := newSessionMux(nil)

	rec, _ := doJSON(t, mux, http.MethodGet, "/api/v1/orders/9999999999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEmployees(t *testing.T) {
	mux := newSessionMux(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var employees []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "Anna", employees[0]["first_name"])
	assert.Equal(t, "2021-03-15", employees[0]["hire_date"])
}

func TestGetEmployee(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/employees/EMP001", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Anna", body["first_name"])
	assert.Equal(t, "Sales", body["department"])
}

func TestGetEmployee_NotFound(t *testing.T) {
	mux := newSessionMux(nil)

	rec, _ := doJSON(t, mux, http.MethodGet, "/api/v1/employees/EMP999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDocuments(t *testing.T) {
	mux := newSessionMux(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var documents []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &documents))
	require.Len(t, documents, 1)
	assert.Equal(t, "Q1 Sales Report", documents[0]["title"])
	assert.Equal(t, float64(482133), documents[0]["size_bytes"])
}

func TestGetDocument(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/documents/DOC001", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Q1 Sales Report", body["title"])
}

func TestGetDocument_NotFound(t *testing.T) {
	mux := newSessionMux(nil)

	rec, _ := doJSON(t, mux, http.MethodGet, "/api/v1/documents/DOC999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAnalytics(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/analytics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	revenue, ok := body["revenue"].([]any)
	require.True(t, ok)
	require.Len(t, revenue, 1)
	assert.Equal(t, "Jan", revenue[0].(map[string]any)["month"])
}

func TestCatalogStoreFailure(t *testing.T) {
	broken := testCatalog
	broken.err = errors.New("database is locked")

	factory := func(_ model.Credentials) httphandler.GatewayClient { return &mockGatewayClient{} }
	h := httphandler.NewHandler(newTestOrderService(nil), catalogServiceFor(&broken), factory, testLogger())
	mux := httphandler.NewServeMux(h, testLogger())

	for _, target := range []string{"/api/v1/employees", "/api/v1/documents", "/api/v1/analytics"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "target %s", target)
	}
}

func TestHealth(t *testing.T) {
	mux := newSessionMux(nil)

	rec, body := doJSON(t, mux, http.MethodGet, "/api/v1/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["time"])
}
