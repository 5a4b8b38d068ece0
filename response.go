package rhttp

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
)

// bodyKind discriminates the response descriptor's body variant.
type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyJSON
	bodyText
	bodyHTML
	bodyStream
)

// Response describes the response a handler wants to send: exactly one body
// variant, an optional status (200 when unset) and optional headers. The
// descriptor is encoded onto the transport by the dispatching [App]; handlers
// never write to the connection themselves.
type Response struct {
	status int
	header http.Header
	kind   bodyKind
	json   any
	text   string
	stream io.Reader
}

// JSON creates a descriptor whose body is v serialized as JSON, with a
// default content-type of application/json.
func JSON(v any) *Response {
	return &Response{kind: bodyJSON, json: v}
}

// Text creates a plain-text descriptor with a default content-type of
// text/plain.
func Text(s string) *Response {
	return &Response{kind: bodyText, text: s}
}

// HTML creates an HTML descriptor with a default content-type of text/html.
func HTML(s string) *Response {
	return &Response{kind: bodyHTML, text: s}
}

// Stream creates a descriptor that copies r to the transport verbatim. No
// implicit content-type is set.
func Stream(r io.Reader) *Response {
	return &Response{kind: bodyStream, stream: r}
}

// NoContent creates a descriptor with an empty body and no implicit
// content-type.
func NoContent() *Response {
	return &Response{kind: bodyNone}
}

// WithStatus sets the response status and returns the descriptor for
// chaining.
func (resp *Response) WithStatus(status int) *Response {
	resp.status = status
	return resp
}

// WithHeader sets an explicit header and returns the descriptor for chaining.
// Explicit headers are applied after the body variant's default content-type
// and may override it.
func (resp *Response) WithHeader(key, value string) *Response {
	if resp.header == nil {
		resp.header = make(http.Header)
	}

	resp.header.Set(key, value)

	return resp
}

// Status returns the status the descriptor will be encoded with, defaulting
// to 200.
func (resp *Response) Status() int {
	if resp.status == 0 {
		return http.StatusOK
	}

	return resp.status
}

// Header returns the explicit header value set on the descriptor, if any.
func (resp *Response) Header(key string) string {
	return resp.header.Get(key)
}

// contentType returns the body variant's implicit content-type, or "" when
// the variant sets none.
func (resp *Response) contentType() string {
	switch resp.kind {
	case bodyJSON:
		return "application/json"
	case bodyText:
		return "text/plain"
	case bodyHTML:
		return "text/html"
	default:
		return ""
	}
}

// Encode writes the descriptor to a transport response: implicit
// content-type first, explicit headers layered on top, then the status and
// body. JSON bodies are serialized before any byte reaches the wire so a
// marshalling failure can still be reported to the caller.
func (resp *Response) Encode(w http.ResponseWriter) error {
	var body []byte

	switch resp.kind {
	case bodyJSON:
		b, err := json.Marshal(resp.json)
		if err != nil {
			return errors.Wrap(err, "marshal json response body")
		}

		body = b
	case bodyText, bodyHTML:
		body = []byte(resp.text)
	}

	if ct := resp.contentType(); ct != "" {
		w.Header().Set("Content-Type", ct)
	}

	for key, vals := range resp.header {
		w.Header()[key] = vals
	}

	if resp.kind != bodyStream {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	}

	w.WriteHeader(resp.Status())

	if resp.kind == bodyStream {
		if resp.stream == nil {
			return nil
		}

		if _, err := io.Copy(w, resp.stream); err != nil {
			return errors.Wrap(err, "copy stream response body")
		}

		return nil
	}

	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "write response body")
	}

	return nil
}
