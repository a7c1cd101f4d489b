// Package httphandler is the HTTP driving adapter: the proxy gateway
// endpoints used by the mobile client and the session-scoped dashboard API.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/sapdash/internal/application"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// Handler serves the REST API.
type Handler struct {
	orders           *application.OrderService
	catalog          *application.CatalogService
	newGatewayClient GatewayClientFactory
	logger           *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	orders *application.OrderService,
	catalog *application.CatalogService,
	newGatewayClient GatewayClientFactory,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		orders:           orders,
		catalog:          catalog,
		newGatewayClient: newGatewayClient,
		logger:           logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Proxy gateway surface (stateless; credentials travel with the request).
	mux.HandleFunc("POST /api/sap/test-connection", h.TestConnection)
	mux.HandleFunc("OPTIONS /api/sap/test-connection", h.Preflight)
	mux.HandleFunc("GET /api/sap/sales-orders", h.ListSalesOrders)
	mux.HandleFunc("OPTIONS /api/sap/sales-orders", h.Preflight)

	// Session-scoped dashboard API.
	mux.HandleFunc("GET /api/v1/connection", h.GetConnection)
	mux.HandleFunc("POST /api/v1/connection", h.Connect)
	mux.HandleFunc("DELETE /api/v1/connection", h.Disconnect)
	mux.HandleFunc("GET /api/v1/orders", h.ListOrders)
	mux.HandleFunc("GET /api/v1/orders/{id}", h.GetOrder)
	mux.HandleFunc("GET /api/v1/employees", h.ListEmployees)
	mux.HandleFunc("GET /api/v1/employees/{id}", h.GetEmployee)
	mux.HandleFunc("GET /api/v1/documents", h.ListDocuments)
	mux.HandleFunc("GET /api/v1/documents/{id}", h.GetDocument)
	mux.HandleFunc("GET /api/v1/analytics", h.GetAnalytics)
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// GetConnection returns the derived session connection state.
func (h *Handler) GetConnection(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toConnectionStateResponse(h.orders.ConnectionState()))
}

// Connect stores session credentials and verifies them. On verification
// failure the credentials stay set and the classified error is surfaced;
// the caller decides whether to re-prompt or disconnect.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" || strings.TrimSpace(req.APIURL) == "" {
		writeError(w, http.StatusBadRequest, missingCredentialsMessage)
		return
	}

	h.orders.SetCredentials(req.Username, req.Password, req.APIURL)

	if err := h.orders.TestConnection(r.Context()); err != nil {
		status := remoteErrorStatus(err)
		h.logger.Warn("session connect failed", "status", status, "error", err)
		writeJSON(w, status, verifyResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Success: true, Message: "Connection successful"})
}

// Disconnect clears the session credentials. Idempotent.
func (h *Handler) Disconnect(w http.ResponseWriter, _ *http.Request) {
	h.orders.ClearCredentials()
	w.WriteHeader(http.StatusNoContent)
}

// ListOrders returns the session-scoped order listing: demo data without
// credentials, live records with them. An optional customer query parameter
// restricts the listing to one sold-to party.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if customer := query.Get("customer"); customer != "" {
		listing, err := h.orders.ListOrdersByCustomer(r.Context(), customer)
		if err != nil {
			h.writeRemoteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOrderListingResponse(listing))
		return
	}

	top := 50
	if raw := query.Get("top"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "top must be a positive integer")
			return
		}
		top = parsed
	}

	listing, err := h.orders.ListOrders(r.Context(), top)
	if err != nil {
		h.writeRemoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderListingResponse(listing))
}

// GetOrder returns a single order by ID, from the sample set in demo mode.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, driven.ErrNotFound) {
			writeError(w, http.StatusNotFound, "sales order not found")
			return
		}
		h.writeRemoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

// ListEmployees returns the employee catalog.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.catalog.ListEmployees(r.Context())
	if err != nil {
		h.logger.Error("failed to list employees", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		resp = append(resp, toEmployeeResponse(employee))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetEmployee returns a single catalog employee by ID.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.catalog.GetEmployee(r.Context(), r.PathValue("id"))
	if err != nil {
		h.logger.Error("failed to load employee", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if employee == nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(*employee))
}

// ListDocuments returns the document catalog.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.catalog.ListDocuments(r.Context())
	if err != nil {
		h.logger.Error("failed to list documents", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]DocumentResponse, 0, len(documents))
	for _, document := range documents {
		resp = append(resp, toDocumentResponse(document))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetDocument returns a single catalog document by ID.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	document, err := h.catalog.GetDocument(r.Context(), r.PathValue("id"))
	if err != nil {
		h.logger.Error("failed to load document", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if document == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(*document))
}

// GetAnalytics returns the dashboard analytics report.
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.catalog.Analytics(r.Context())
	if err != nil {
		h.logger.Error("failed to load analytics", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toAnalyticsResponse(report))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// writeRemoteError maps a classified remote failure onto the session API.
func (h *Handler) writeRemoteError(w http.ResponseWriter, err error) {
	status := remoteErrorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("order request failed", "error", err)
		writeError(w, status, "internal server error")
		return
	}

	h.logger.Warn("order request failed", "status", status, "error", err)
	writeError(w, status, err.Error())
}
