package ordermodels

import "fmt"

// TransportError wraps a network level failure. No request reached the
// brokerage, or no response came back.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(endpoint string, err error) *TransportError {
	return &TransportError{
		Endpoint: endpoint,
		Err:      err,
	}
}
