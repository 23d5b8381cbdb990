package fc

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	contentTypeJSON   = "application/json"
	contentTypeStream = "application/octet-stream"

	headerAccountID      = "x-fc-account-id"
	headerSecurityToken  = "x-fc-security-token"
	headerRequestID      = "x-fc-request-id"
	headerErrorType      = "x-fc-error-type"
	headerInvocationType = "x-fc-invocation-type"
)

// RequestOption tunes the handling of a single call to Do.
type RequestOption struct {
	// Return a non-JSON response payload as raw bytes instead of text.
	// Ignored when the response carries a service error type header.
	RawBuf bool
}

// Do performs one authenticated round trip against the service. Every
// resource method funnels through here: it assembles headers, encodes the
// body, signs the canonical string and interprets the response. Exactly one
// network exchange happens per call; there are no retries and no client
// state is mutated, so concurrent calls need no coordination.
//
// path is the API path without the version prefix (e.g. "/services"), with
// any user-supplied segments already percent-escaped. query goes on the
// wire for every request but is part of the signature only for paths under
// the proxy prefix.
func (c *Client) Do(method, path string, query url.Values, body *Body, headers map[string]string, opt *RequestOption) (*Response, error) {
	merged := c.defaultHeaders(time.Now())
	for key, value := range c.headers {
		merged[strings.ToLower(key)] = value
	}
	for key, value := range headers {
		merged[strings.ToLower(key)] = value
	}

	// Body-derived headers (content-type/length/md5) are set after the
	// merge: caller values never override them, and they must be in place
	// before signing since the canonical string covers them.
	payload, stream, err := encodeBody(body, merged)
	if err != nil {
		return nil, err
	}

	versionedPath := "/" + apiVersion + path

	// Query parameters are signed only for proxied invocations; everywhere
	// else they are sent unsigned. The service checks signatures against
	// exactly this rule, so it must not be "fixed".
	var signedQuery url.Values
	if strings.HasPrefix(path, proxyPathPrefix) {
		signedQuery = query
	}

	stringToSign := composeStringToSign(method, versionedPath, merged, signedQuery)
	merged["authorization"] = authorization(c.accessKeyID, stringToSign, c.accessKeySecret)

	c.log.WithFields(map[string]interface{}{
		"method": method,
		"path":   versionedPath,
	}).Debug("dispatching request")
	c.log.Debugf("string to sign:\n%s", stringToSign)

	var reqBody io.Reader
	if stream != nil {
		reqBody = stream
	} else if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.endpoint+versionedPath, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build HTTP request")
	}
	if stream != nil {
		// NewRequest sniffs common reader types and fills in a length;
		// streaming bodies must stay unsized so the transport chunks them.
		req.ContentLength = -1
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	for key, value := range merged {
		if key == "host" {
			req.Host = value
			continue
		}
		req.Header.Set(key, value)
	}
	if payload != nil {
		req.ContentLength = int64(len(payload))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	return interpretResponse(resp, opt)
}

// defaultHeaders computes the per-call base headers. Client-level and
// call-level customs are layered on top by Do.
func (c *Client) defaultHeaders(now time.Time) map[string]string {
	headers := map[string]string{
		"accept":        contentTypeJSON,
		"date":          now.UTC().Format(http.TimeFormat),
		"host":          c.host,
		"user-agent":    c.userAgent,
		headerAccountID: c.accountID,
	}
	if c.securityToken != "" {
		headers[headerSecurityToken] = c.securityToken
	}
	return headers
}

// encodeBody serializes the payload according to its declared kind and
// attaches the body-derived headers. Streaming payloads pass through
// untouched: no buffering, no length, no digest.
func encodeBody(body *Body, headers map[string]string) ([]byte, io.Reader, error) {
	if body == nil || body.kind == bodyNone {
		return nil, nil, nil
	}

	var payload []byte
	switch body.kind {
	case bodyBytes:
		payload = body.raw
		headers["content-type"] = contentTypeStream
	case bodyText:
		payload = []byte(body.text)
		headers["content-type"] = contentTypeStream
	case bodyStream:
		return nil, body.stream, nil
	case bodyJSON:
		encoded, err := json.Marshal(body.value)
		if err != nil {
			return nil, nil, &BodyError{Err: err}
		}
		payload = encoded
		headers["content-type"] = contentTypeJSON
	default:
		return nil, nil, &BodyError{Err: errors.Errorf("unsupported body kind %d", body.kind)}
	}

	headers["content-length"] = strconv.Itoa(len(payload))
	headers["content-md5"] = contentMD5(payload)
	return payload, nil, nil
}

// contentMD5 follows the service's digest convention: the hex form of the
// md5 digest, then base64 of that hex string (not of the raw digest bytes).
func contentMD5(payload []byte) string {
	sum := md5.Sum(payload)
	return base64.StdEncoding.EncodeToString([]byte(hex.EncodeToString(sum[:])))
}
