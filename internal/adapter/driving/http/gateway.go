package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// GatewayClient is the slice of the sales-order client the proxy gateway
// needs: the connectivity probe and the verbatim listing relay.
type GatewayClient interface {
	Probe(ctx context.Context) error
	ListOrdersRaw(ctx context.Context, top int) ([]byte, error)
}

// GatewayClientFactory builds a per-request client for the credentials a
// gateway caller supplied. The gateway holds no credential state of its own.
type GatewayClientFactory func(creds model.Credentials) GatewayClient

const missingCredentialsMessage = "Missing required credentials"

// writeCORS emits the permissive cross-origin headers the mobile client
// depends on for same-origin proxy calls from a browser context.
func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// Preflight answers CORS preflight requests for the gateway endpoints.
func (h *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	writeCORS(w)
	w.WriteHeader(http.StatusOK)
}

// TestConnection is the proxy gateway's verify operation: it probes the
// remote system with the credentials from the request body and mirrors the
// remote status back. No upstream call happens when a credential field is
// missing.
func (h *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)

	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, verifyResponse{Success: false, Error: "invalid request body"})
		return
	}

	creds := model.Credentials{Username: req.Username, Password: req.Password, APIURL: req.APIURL}
	if !creds.Complete() {
		writeJSON(w, http.StatusBadRequest, verifyResponse{Success: false, Error: missingCredentialsMessage})
		return
	}

	client := h.newGatewayClient(creds)
	if err := client.Probe(r.Context()); err != nil {
		status := remoteErrorStatus(err)
		h.logger.Warn("connection test failed", "api_url", creds.APIURL, "status", status, "error", err)
		writeJSON(w, status, verifyResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Success: true, Message: "Connection successful"})
}

// ListSalesOrders is the proxy gateway's list operation: it forwards the
// listing request with the credentials from the query string and relays the
// remote JSON envelope verbatim.
func (h *Handler) ListSalesOrders(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)

	query := r.URL.Query()
	creds := model.Credentials{
		Username: query.Get("username"),
		Password: query.Get("password"),
		APIURL:   query.Get("apiUrl"),
	}
	if !creds.Complete() {
		writeError(w, http.StatusBadRequest, missingCredentialsMessage)
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

	client := h.newGatewayClient(creds)
	body, err := client.ListOrdersRaw(r.Context(), top)
	if err != nil {
		status := remoteErrorStatus(err)
		h.logger.Warn("sales order relay failed", "api_url", creds.APIURL, "status", status, "error", err)
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// remoteErrorStatus maps a classified remote error to the HTTP status the
// gateway mirrors to its caller. Unreachable upstreams and malformed bodies
// surface as 502; anything unclassified is a local 500.
func remoteErrorStatus(err error) int {
	switch {
	case errors.Is(err, driven.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, driven.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, driven.ErrTargetNotFound):
		return http.StatusNotFound
	}

	var transportErr *driven.TransportError
	if errors.As(err, &transportErr) {
		if transportErr.Status >= 400 {
			return transportErr.Status
		}
		return http.StatusBadGateway
	}

	var shapeErr *driven.UnexpectedShapeError
	if errors.As(err, &shapeErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
