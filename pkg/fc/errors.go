package fc

import "fmt"

// Error taxonomy for the client. Construction problems surface as
// *ConfigError before any network activity; everything else comes out of
// Do as one of the typed errors below so callers can decide on retries
// themselves (the client never retries).

// ConfigError reports missing or invalid construction options.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid client config: " + e.Reason
}

// BodyError reports a request payload that could not be encoded.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return "unable to encode request body: " + e.Err.Error()
}

// TransportError wraps a network-level failure (including timeout) from the
// underlying HTTP transport.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport failure: " + e.Err.Error()
}

// DecodeError reports a response that declared a JSON content type but did
// not parse as JSON.
type DecodeError struct {
	RequestID string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode response (requestid: %s): %v", e.RequestID, e.Err)
}

// APIError is a non-2xx response from the service.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d, requestid: %s): %s",
		e.Code, e.HTTPStatus, e.RequestID, e.Message)
}
