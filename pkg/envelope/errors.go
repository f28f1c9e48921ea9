package envelope

import "fmt"

// TransportError wraps a network-level failure: the request never
// completed (connection refused, DNS failure, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a non-200 status or a body that could not be
// parsed as JSON. Message prefers the body's error field when one was
// present, falling back to the raw response text.
type ProtocolError struct {
	StatusCode int
	Message    string
}

func (e *ProtocolError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("core service returned HTTP %d", e.StatusCode)
	}
	return e.Message
}

// LogicalError reports an envelope that parsed cleanly but whose result
// discriminant was not "success". Message is the service-supplied error.
type LogicalError struct {
	Message string
}

func (e *LogicalError) Error() string {
	return e.Message
}
