package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/sapdash/internal/application"
	"github.com/ericfisherdev/sapdash/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// verifyResponse is the proxy gateway's connection-test response body.
type verifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// connectRequest is the JSON body for the connection-test and session-connect
// endpoints.
type connectRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	APIURL   string `json:"apiUrl"`
}

// ConnectionStateResponse is the JSON representation of the session state.
type ConnectionStateResponse struct {
	Mode      string `json:"mode"`
	Connected bool   `json:"connected"`
	APIURL    string `json:"api_url,omitempty"`
	Username  string `json:"username,omitempty"`
}

// StatusResponse is the display form of a processing-status code.
type StatusResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// OrderItemResponse is the JSON representation of a sales-order line item.
type OrderItemResponse struct {
	ID           string `json:"id"`
	Material     string `json:"material"`
	Description  string `json:"description"`
	Quantity     string `json:"quantity"`
	QuantityUnit string `json:"quantity_unit"`
	NetAmount    string `json:"net_amount"`
	Currency     string `json:"currency"`
}

// OrderResponse is the JSON representation of a sales order. Raw remote
// values are carried alongside display renderings so the mobile client can
// filter on codes and show labels without re-deriving them.
type OrderResponse struct {
	ID                  string              `json:"id"`
	Type                string              `json:"type"`
	SoldToParty         string              `json:"sold_to_party"`
	SoldToPartyName     string              `json:"sold_to_party_name"`
	CreationDate        string              `json:"creation_date"`
	CreationDateDisplay string              `json:"creation_date_display"`
	CreatedByUser       string              `json:"created_by_user"`
	TotalNetAmount      string              `json:"total_net_amount"`
	TransactionCurrency string              `json:"transaction_currency"`
	DeliveryStatus      StatusResponse      `json:"delivery_status"`
	BillingStatus       StatusResponse      `json:"billing_status"`
	Items               []OrderItemResponse `json:"items"`
}

// OrderSummaryResponse is the JSON representation of the listing aggregates.
type OrderSummaryResponse struct {
	OrderCount int    `json:"order_count"`
	TotalValue string `json:"total_value"`
	Pending    int    `json:"pending"`
	Processing int    `json:"processing"`
	Completed  int    `json:"completed"`
}

// OrderListingResponse is the JSON representation of a listing call.
type OrderListingResponse struct {
	Mode    string               `json:"mode"`
	Summary OrderSummaryResponse `json:"summary"`
	Orders  []OrderResponse      `json:"orders"`
}

// EmployeeResponse is the JSON representation of a catalog employee.
type EmployeeResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"`
	Status     string `json:"status"`
}

// DocumentResponse is the JSON representation of a catalog document.
type DocumentResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	CreatedBy   string `json:"created_by"`
	CreatedDate string `json:"created_date"`
	Status      string `json:"status"`
	SizeBytes   int64  `json:"size_bytes"`
}

// RevenuePointResponse is one month of the revenue chart.
type RevenuePointResponse struct {
	Month string `json:"month"`
	Value int64  `json:"value"`
}

// DepartmentShareResponse is one slice of the department chart.
type DepartmentShareResponse struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// AnalyticsResponse is the JSON representation of the analytics report.
type AnalyticsResponse struct {
	Revenue     []RevenuePointResponse    `json:"revenue"`
	Departments []DepartmentShareResponse `json:"departments"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toConnectionStateResponse converts the session state to its JSON form.
func toConnectionStateResponse(state application.ConnectionState) ConnectionStateResponse {
	return ConnectionStateResponse{
		Mode:      string(state.Mode),
		Connected: state.Connected,
		APIURL:    state.APIURL,
		Username:  state.Username,
	}
}

// toStatusResponse converts a processing-status code to its display form.
func toStatusResponse(s model.ProcessingStatus) StatusResponse {
	return StatusResponse{
		Code:  string(s),
		Label: s.Label(),
		Color: s.Color(),
	}
}

// toOrderResponse converts a domain SalesOrder to its JSON response
// representation.
func toOrderResponse(order model.SalesOrder) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:           item.ID,
			Material:     item.Material,
			Description:  item.Description,
			Quantity:     item.Quantity,
			QuantityUnit: item.QuantityUnit,
			NetAmount:    item.NetAmount,
			Currency:     item.Currency,
		})
	}

	return OrderResponse{
		ID:                  order.ID,
		Type:                order.Type,
		SoldToParty:         order.SoldToParty,
		SoldToPartyName:     order.SoldToPartyName,
		CreationDate:        order.CreationDate,
		CreationDateDisplay: model.FormatSAPDate(order.CreationDate),
		CreatedByUser:       order.CreatedByUser,
		TotalNetAmount:      order.TotalNetAmount,
		TransactionCurrency: order.TransactionCurrency,
		DeliveryStatus:      toStatusResponse(order.OverallDeliveryStatus),
		BillingStatus:       toStatusResponse(order.OverallBillingStatus),
		Items:               items,
	}
}

// toOrderListingResponse converts a listing plus its aggregates to JSON form.
func toOrderListingResponse(listing application.OrderListing) OrderListingResponse {
	orders := make([]OrderResponse, 0, len(listing.Orders))
	for _, order := range listing.Orders {
		orders = append(orders, toOrderResponse(order))
	}

	summary := application.Summarize(listing.Orders)

	return OrderListingResponse{
		Mode: string(listing.Mode),
		Summary: OrderSummaryResponse{
			OrderCount: summary.OrderCount,
			TotalValue: summary.TotalValue.StringFixed(2),
			Pending:    summary.Pending,
			Processing: summary.Processing,
			Completed:  summary.Completed,
		},
		Orders: orders,
	}
}

// toEmployeeResponse converts a domain Employee to its JSON representation.
func toEmployeeResponse(employee model.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Department: employee.Department,
		Position:   employee.Position,
		HireDate:   employee.HireDate.Format(time.DateOnly),
		Status:     employee.Status,
	}
}

// toDocumentResponse converts a domain Document to its JSON representation.
func toDocumentResponse(document model.Document) DocumentResponse {
	return DocumentResponse{
		ID:          document.ID,
		Title:       document.Title,
		Type:        document.Type,
		CreatedBy:   document.CreatedBy,
		CreatedDate: document.CreatedDate.Format(time.DateOnly),
		Status:      document.Status,
		SizeBytes:   document.SizeBytes,
	}
}

// toAnalyticsResponse converts an analytics report to its JSON representation.
func toAnalyticsResponse(report *application.AnalyticsReport) AnalyticsResponse {
	revenue := make([]RevenuePointResponse, 0, len(report.Revenue))
	for _, point := range report.Revenue {
		revenue = append(revenue, RevenuePointResponse{Month: point.Month, Value: point.Value})
	}

	departments := make([]DepartmentShareResponse, 0, len(report.Departments))
	for _, share := range report.Departments {
		departments = append(departments, DepartmentShareResponse{Name: share.Name, Percentage: share.Percentage})
	}

	return AnalyticsResponse{Revenue: revenue, Departments: departments}
}
