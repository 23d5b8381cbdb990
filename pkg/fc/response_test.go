package fc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveResponse(status int, contentType string, headers map[string]string, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("content-type", contentType)
		}
		for key, value := range headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestAPIErrorFields(t *testing.T) {
	server := serveResponse(404, "application/json",
		map[string]string{headerRequestID: "rid-1"},
		`{"ErrorCode":"ServiceNotFound","ErrorMessage":"foo"}`)
	defer server.Close()

	client := testClient(t, server.URL, nil)
	_, err := client.Do(http.MethodGet, "/services/missing", nil, nil, nil, nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, 404, apiErr.HTTPStatus)
	assert.Equal(t, "ServiceNotFound", apiErr.Code)
	assert.Equal(t, "foo", apiErr.Message)
	assert.Equal(t, "rid-1", apiErr.RequestID)
}

// Some service components report the message under a lower-cased field
// name; both casings must be checked.
func TestAPIErrorLowercaseMessage(t *testing.T) {
	server := serveResponse(400, "application/json", nil, `{"ErrorCode":"BadRequest","errorMessage":"bar"}`)
	defer server.Close()

	client := testClient(t, server.URL, nil)
	_, err := client.Do(http.MethodGet, "/services", nil, nil, nil, nil)
	require.Error(t, err)
	apiErr := err.(*APIError)
	assert.Equal(t, "bar", apiErr.Message)
}

func TestAPIErrorTextBody(t *testing.T) {
	server := serveResponse(502, "text/plain", map[string]string{headerRequestID: "rid-2"}, "upstream exploded")
	defer server.Close()

	client := testClient(t, server.URL, nil)
	_, err := client.Do(http.MethodGet, "/services", nil, nil, nil, nil)
	require.Error(t, err)
	apiErr := err.(*APIError)
	assert.Equal(t, 502, apiErr.HTTPStatus)
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestRawBufPolicy(t *testing.T) {
	server := serveResponse(200, "text/plain", nil, "hello")
	defer server.Close()
	client := testClient(t, server.URL, nil)

	resp, err := client.Do(http.MethodGet, "/p", nil, nil, nil, &RequestOption{RawBuf: true})
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), resp.Data)

	resp, err = client.Do(http.MethodGet, "/p", nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Data)
}

// RawBuf is ignored when the response carries a service error type header.
func TestRawBufIgnoredOnFunctionError(t *testing.T) {
	server := serveResponse(200, "text/plain", map[string]string{headerErrorType: "UnhandledInvocationError"}, "trace")
	defer server.Close()
	client := testClient(t, server.URL, nil)

	resp, err := client.Do(http.MethodGet, "/p", nil, nil, nil, &RequestOption{RawBuf: true})
	require.NoError(t, err)
	assert.Equal(t, "trace", resp.Data)
}

func TestJSONResponseParsed(t *testing.T) {
	server := serveResponse(200, "application/json; charset=utf-8", nil, `{"serviceName":"svc","limit":3}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	resp, err := client.Do(http.MethodGet, "/p", nil, nil, nil, nil)
	require.NoError(t, err)
	doc, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "svc", doc["serviceName"])
}

func TestJSONDecodeError(t *testing.T) {
	server := serveResponse(200, "application/json", map[string]string{headerRequestID: "rid-3"}, `{"broken`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	_, err := client.Do(http.MethodGet, "/p", nil, nil, nil, nil)
	require.Error(t, err)
	decodeErr, ok := err.(*DecodeError)
	require.True(t, ok, "expected *DecodeError, got %T", err)
	assert.Equal(t, "rid-3", decodeErr.RequestID)
}

func TestResponseRequestID(t *testing.T) {
	server := serveResponse(200, "application/json", map[string]string{headerRequestID: "rid-4"}, `{}`)
	defer server.Close()
	client := testClient(t, server.URL, nil)

	resp, err := client.Do(http.MethodGet, "/p", nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "rid-4", resp.RequestID())
}
