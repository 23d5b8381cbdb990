package fc

// Request signing. The canonical string layout and the query-signing rule
// for proxied paths are validated byte-for-byte by the service, so nothing
// here may be "cleaned up" without breaking authentication.

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"sort"
	"strings"
)

const (
	// Headers whose lower-cased key carries this prefix participate in the
	// canonical string.
	canonicalHeaderPrefix = "x-fc-"

	// Requests under this path prefix additionally sign their query
	// parameters; everywhere else the query is sent but left unsigned.
	proxyPathPrefix = "/proxy/"

	authScheme = "FC"
)

// composeStringToSign builds the canonical representation of a request:
//
//	METHOD \n content-md5 \n content-type \n date \n
//	sorted x-fc-* header lines, percent-decoded path
//	[\n sorted query pairs]
//
// The output depends only on the key/value content of headers and query,
// never on map iteration order.
func composeStringToSign(method, path string, headers map[string]string, query url.Values) string {
	contentMD5 := headerValue(headers, "content-md5")
	contentType := headerValue(headers, "content-type")

	// The reference client renders a missing date header as the literal
	// string "undefined", and the service validates signatures computed that
	// way. Reproduced verbatim.
	date, ok := lookupHeader(headers, "date")
	if !ok {
		date = "undefined"
	}

	decodedPath, err := url.PathUnescape(path)
	if err != nil {
		decodedPath = path
	}

	str := method + "\n" +
		contentMD5 + "\n" +
		contentType + "\n" +
		date + "\n" +
		canonicalizedHeaders(headers) +
		decodedPath

	if len(query) > 0 {
		var pairs []string
		for key, values := range query {
			for _, value := range values {
				pairs = append(pairs, key+"="+value)
			}
		}
		sort.Strings(pairs)
		str += "\n" + strings.Join(pairs, "\n")
	}

	return str
}

// canonicalizedHeaders selects the x-fc-* headers and emits one
// "key:value\n" line per header, keys lower-cased, sorted ascending.
func canonicalizedHeaders(headers map[string]string) string {
	lowered := make(map[string]string)
	var keys []string
	for key, value := range headers {
		lowerKey := strings.TrimSpace(strings.ToLower(key))
		if strings.HasPrefix(lowerKey, canonicalHeaderPrefix) {
			if _, seen := lowered[lowerKey]; !seen {
				keys = append(keys, lowerKey)
			}
			lowered[lowerKey] = value
		}
	}
	sort.Strings(keys)

	var canonical string
	for _, key := range keys {
		canonical += key + ":" + lowered[key] + "\n"
	}
	return canonical
}

// signString computes the base64 HMAC-SHA256 of stringToSign under secret.
// Pure function: identical inputs always produce identical output.
func signString(stringToSign, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// authorization renders the Authorization header value.
func authorization(accessKeyID, stringToSign, secret string) string {
	return authScheme + " " + accessKeyID + ":" + signString(stringToSign, secret)
}

// lookupHeader finds a header by case-insensitive key.
func lookupHeader(headers map[string]string, name string) (string, bool) {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return "", false
}

func headerValue(headers map[string]string, name string) string {
	value, _ := lookupHeader(headers, name)
	return value
}
