package fc

import "io"

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyBytes
	bodyText
	bodyStream
	bodyJSON
)

// Body is a request payload with an explicit shape. A nil *Body means no
// payload. The dispatcher switches on the declared kind instead of
// inspecting the value at runtime, so an unsupported shape cannot be
// constructed in the first place.
type Body struct {
	kind   bodyKind
	raw    []byte
	text   string
	stream io.Reader
	value  interface{}
}

// BytesBody sends b unmodified as an octet stream.
func BytesBody(b []byte) *Body {
	return &Body{kind: bodyBytes, raw: b}
}

// TextBody sends s UTF-8 encoded as an octet stream.
func TextBody(s string) *Body {
	return &Body{kind: bodyText, text: s}
}

// StreamBody forwards r to the transport without buffering. No
// content-length or content-md5 header is computed; the transport uses
// chunked transfer encoding.
func StreamBody(r io.Reader) *Body {
	return &Body{kind: bodyStream, stream: r}
}

// JSONBody serializes v as a JSON document.
func JSONBody(v interface{}) *Body {
	return &Body{kind: bodyJSON, value: v}
}
