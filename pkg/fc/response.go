package fc

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
)

// Response is the decoded result of one round trip.
type Response struct {
	Header http.Header

	// Body holds the raw payload bytes as received.
	Body []byte

	// Data is the interpreted payload: the parsed document for JSON
	// responses, otherwise the raw bytes or the text per RequestOption.
	Data interface{}
}

// RequestID returns the service-assigned id of the request that produced
// this response.
func (r *Response) RequestID() string {
	return r.Header.Get(headerRequestID)
}

// Decode unmarshals the raw payload into out.
func (r *Response) Decode(out interface{}) error {
	if out == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return &DecodeError{RequestID: r.RequestID(), Err: err}
	}
	return nil
}

// interpretResponse turns a transport response into a *Response, or into
// one of the typed errors. No schema validation happens here; a 2xx
// response is returned as-is.
func interpretResponse(resp *http.Response, opt *RequestOption) (*Response, error) {
	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	requestID := resp.Header.Get(headerRequestID)
	out := &Response{Header: resp.Header, Body: raw}

	if opt != nil && opt.RawBuf && resp.Header.Get(headerErrorType) == "" {
		out.Data = raw
	} else {
		out.Data = string(raw)
	}

	contentType := resp.Header.Get("content-type")
	if strings.HasPrefix(contentType, contentTypeJSON) && len(raw) > 0 {
		var doc interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			// A declared-JSON body that does not parse is an error in its
			// own right, never silently passed through.
			return nil, &DecodeError{RequestID: requestID, Err: err}
		}
		out.Data = doc
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, buildAPIError(resp.StatusCode, requestID, out.Data, raw)
	}
	return out, nil
}

// buildAPIError extracts the service error code and message from a non-2xx
// payload. The message field shows up under either casing depending on
// which service component produced the error.
func buildAPIError(status int, requestID string, data interface{}, raw []byte) *APIError {
	apiErr := &APIError{HTTPStatus: status, RequestID: requestID}

	doc, ok := data.(map[string]interface{})
	if !ok {
		apiErr.Message = string(raw)
		return apiErr
	}
	if code, ok := doc["ErrorCode"].(string); ok {
		apiErr.Code = code
	}
	if msg, ok := doc["ErrorMessage"].(string); ok {
		apiErr.Message = msg
	} else if msg, ok := doc["errorMessage"].(string); ok {
		apiErr.Message = msg
	}
	return apiErr
}
