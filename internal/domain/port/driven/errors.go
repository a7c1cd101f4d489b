package driven

import (
	"errors"
	"fmt"
)

// Error taxonomy for remote sales-order access. Callers branch with
// errors.Is/errors.As; none of these are retried anywhere.
var (
	// ErrMissingCredentials: an authenticated operation was invoked with no
	// credential set configured. Recoverable by re-prompting for credentials.
	ErrMissingCredentials = errors.New("no SAP credentials configured")

	// ErrAuthentication: the remote system rejected the credentials (401).
	ErrAuthentication = errors.New("authentication failed: check your credentials")

	// ErrAuthorization: credentials are valid but lack rights (403).
	ErrAuthorization = errors.New("access denied: missing permission for this resource")

	// ErrTargetNotFound: the service address is malformed or the resource is
	// absent (404).
	ErrTargetNotFound = errors.New("API endpoint not found: check the API URL")

	// ErrNotFound: a keyed lookup matched no record.
	ErrNotFound = errors.New("sales order not found")
)

// TransportError reports a connectivity-level failure: network errors,
// unexpected HTTP statuses, or a response body that is not JSON. Status is 0
// when no HTTP response was received.
type TransportError struct {
	Status      int
	ContentType string
	Reason      string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("sap request failed: %s", e.Reason)
	}
	if e.ContentType != "" {
		return fmt.Sprintf("sap request failed: status %d, content-type %q: %s", e.Status, e.ContentType, e.Reason)
	}
	return fmt.Sprintf("sap request failed: status %d: %s", e.Status, e.Reason)
}

// UnexpectedShapeError reports a response that was valid JSON but lacked the
// expected envelope key. Distinct from TransportError: the connection works,
// the contract does not match.
type UnexpectedShapeError struct {
	Key string
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("sap response missing expected %q envelope", e.Key)
}
