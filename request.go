package rhttp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// Request normalizes a transport request into the shape the router and
// handlers need. The method, URL, query parameters, headers and cookies are
// available eagerly; the body is read lazily and at most once, because the
// underlying transport stream is single-use.
type Request struct {
	Method  string
	URL     *url.URL
	Query   url.Values
	Header  http.Header
	Cookies *CookieJar

	raw *http.Request
}

// NewRequest wraps a transport request. An absent Cookie header yields an
// empty jar; a present one is parsed with [ParseCookies], quirks included.
func NewRequest(r *http.Request) *Request {
	jar := NewCookieJar()
	if _, ok := r.Header["Cookie"]; ok {
		jar = ParseCookies(r.Header.Get("Cookie"))
	}

	return &Request{
		Method:  r.Method,
		URL:     r.URL,
		Query:   r.URL.Query(),
		Header:  r.Header,
		Cookies: jar,
		raw:     r,
	}
}

// Raw returns the underlying transport request.
func (r *Request) Raw() *http.Request {
	return r.raw
}

// FormData consumes the body as form data. Multipart bodies are parsed with
// in-memory spillover per net/http defaults; urlencoded bodies via ParseForm.
// Single-use: a second body read observes an exhausted stream.
func (r *Request) FormData() (url.Values, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.raw.ParseMultipartForm(32 << 20); err != nil {
			return nil, errors.Wrap(err, "parse multipart form body")
		}

		return r.raw.MultipartForm.Value, nil
	}

	if err := r.raw.ParseForm(); err != nil {
		return nil, errors.Wrap(err, "parse form body")
	}

	return r.raw.PostForm, nil
}

// JSON consumes the body and decodes it as JSON into v. Single-use.
func (r *Request) JSON(v any) error {
	if err := json.NewDecoder(r.raw.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decode json body")
	}

	return nil
}

// Text consumes the body and returns it as a string. Single-use.
func (r *Request) Text() (string, error) {
	b, err := io.ReadAll(r.raw.Body)
	if err != nil {
		return "", errors.Wrap(err, "read body")
	}

	return string(b), nil
}

// withURL clones the request with a replaced URL, sharing the raw request and
// body. Used by mounted sub-apps to strip their prefix.
func (r *Request) withURL(u *url.URL) *Request {
	clone := *r
	clone.URL = u
	clone.Query = u.Query()

	return &clone
}
