// Package sap implements the SalesOrderClient port against the SAP OData
// sales-order service (API_SALES_ORDER_SRV).
package sap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gregjones/httpcache"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SalesOrderClient = (*Client)(nil)

// Client implements the driven.SalesOrderClient port over plain HTTP with
// Basic auth. Each request carries the credentials the client was constructed
// with; there is no retry and no client-enforced timeout (transport default).
type Client struct {
	http    *http.Client
	baseURL string // sales-order service root, no trailing slash
	creds   model.Credentials
}

// NewClient creates a sales-order client with an in-memory ETag cache
// transport, so repeated listings revalidate with conditional requests
// instead of refetching unchanged payloads.
func NewClient(creds model.Credentials) *Client {
	return newClient(&http.Client{Transport: httpcache.NewMemoryCacheTransport()}, creds)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an
// httptest server's client.
func NewClientWithHTTPClient(httpClient *http.Client, creds model.Credentials) *Client {
	return newClient(httpClient, creds)
}

func newClient(httpClient *http.Client, creds model.Credentials) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(creds.APIURL, "/"),
		creds:   creds,
	}
}

// Probe issues the minimal connectivity check: one record, no expansion.
// A nil return means the remote system answered 2xx with a JSON body.
func (c *Client) Probe(ctx context.Context) error {
	query := url.Values{}
	query.Set("$top", "1")

	_, err := c.get(ctx, "/A_SalesOrder", query)
	return err
}

// ListOrders fetches up to top orders with line items expanded, newest first.
// The remote ordering is preserved; no client-side re-sorting happens.
func (c *Client) ListOrders(ctx context.Context, top int) ([]model.SalesOrder, error) {
	body, err := c.ListOrdersRaw(ctx, top)
	if err != nil {
		return nil, err
	}
	return unwrapList(body)
}

// ListOrdersRaw fetches the listing and returns the remote JSON envelope
// verbatim. The proxy gateway relays these bytes without reshaping them.
func (c *Client) ListOrdersRaw(ctx context.Context, top int) ([]byte, error) {
	if top <= 0 {
		return nil, fmt.Errorf("top must be positive, got %d", top)
	}

	query := url.Values{}
	query.Set("$top", strconv.Itoa(top))
	query.Set("$expand", "to_Item")
	query.Set("$orderby", "CreationDate desc")

	return c.get(ctx, "/A_SalesOrder", query)
}

// GetOrder fetches a single order with expanded line items. A remote 404 on
// the keyed resource means the order does not exist.
func (c *Client) GetOrder(ctx context.Context, id string) (*model.SalesOrder, error) {
	query := url.Values{}
	query.Set("$expand", "to_Item")

	body, err := c.get(ctx, fmt.Sprintf("/A_SalesOrder('%s')", id), query)
	if err != nil {
		if errors.Is(err, driven.ErrTargetNotFound) {
			return nil, fmt.Errorf("sales order %q: %w", id, driven.ErrNotFound)
		}
		return nil, err
	}

	var envelope struct {
		D *wireOrder `json:"d"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &driven.TransportError{Reason: fmt.Sprintf("decode response: %v", err)}
	}
	if envelope.D == nil {
		return nil, &driven.UnexpectedShapeError{Key: "d"}
	}

	order := mapOrder(*envelope.D)
	return &order, nil
}

// ListOrdersByCustomer fetches all orders for one sold-to party, newest first.
func (c *Client) ListOrdersByCustomer(ctx context.Context, soldToParty string) ([]model.SalesOrder, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("SoldToParty eq '%s'", soldToParty))
	query.Set("$expand", "to_Item")
	query.Set("$orderby", "CreationDate desc")

	body, err := c.get(ctx, "/A_SalesOrder", query)
	if err != nil {
		return nil, err
	}
	return unwrapList(body)
}

// get issues an authenticated GET and returns the body bytes of a JSON 2xx
// response. All failure paths come back classified per the error taxonomy.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &driven.TransportError{Reason: fmt.Sprintf("build request: %v", err)}
	}
	req.SetBasicAuth(c.creds.Username, c.creds.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &driven.TransportError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "json") {
		return nil, &driven.TransportError{
			Status:      resp.StatusCode,
			ContentType: contentType,
			Reason:      "expected a JSON body",
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &driven.TransportError{
			Status: resp.StatusCode,
			Reason: fmt.Sprintf("read body: %v", err),
		}
	}

	return body, nil
}

// classifyStatus maps a non-2xx response to the tiered error taxonomy.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("sap responded %d: %w", resp.StatusCode, driven.ErrAuthentication)
	case http.StatusForbidden:
		return fmt.Errorf("sap responded %d: %w", resp.StatusCode, driven.ErrAuthorization)
	case http.StatusNotFound:
		return fmt.Errorf("sap responded %d: %w", resp.StatusCode, driven.ErrTargetNotFound)
	default:
		return &driven.TransportError{
			Status:      resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Reason:      resp.Status,
		}
	}
}

// unwrapList decodes the OData list envelope {d:{results:[...]}} and maps the
// wire records to domain orders, preserving remote order.
func unwrapList(body []byte) ([]model.SalesOrder, error) {
	var envelope struct {
		D *struct {
			Results *[]wireOrder `json:"results"`
		} `json:"d"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &driven.TransportError{Reason: fmt.Sprintf("decode response: %v", err)}
	}
	if envelope.D == nil {
		return nil, &driven.UnexpectedShapeError{Key: "d"}
	}
	if envelope.D.Results == nil {
		return nil, &driven.UnexpectedShapeError{Key: "d.results"}
	}

	orders := make([]model.SalesOrder, 0, len(*envelope.D.Results))
	for _, w := range *envelope.D.Results {
		orders = append(orders, mapOrder(w))
	}
	return orders, nil
}
