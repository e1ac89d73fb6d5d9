package provider

import (
	"errors"
	"fmt"
)

// ErrCredentialMissing is returned by an adapter constructed without its key.
// The chain treats it like any other attempt failure and moves on.
var ErrCredentialMissing = errors.New("provider credential not configured")

// TransportError covers network failures, non-success HTTP statuses and
// timeouts from a backend call.
type TransportError struct {
	Provider ID
	Status   int // HTTP status when known, 0 otherwise
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: transport failure (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: transport failure: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError indicates the backend answered but the payload did
// not have the expected shape. Handled identically to a transport failure.
type MalformedResponseError struct {
	Provider ID
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("malformed response: %s", e.Reason)
	}
	return fmt.Sprintf("%s: malformed response: %s", e.Provider, e.Reason)
}
