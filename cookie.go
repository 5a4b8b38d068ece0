package rhttp

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// CookieJar is an ordered name-to-value mapping parsed from a Cookie header.
// Duplicate names keep their first position but take the last value seen.
type CookieJar struct {
	names []string
	vals  map[string]string
}

// NewCookieJar inits an empty jar.
func NewCookieJar() *CookieJar {
	return &CookieJar{vals: make(map[string]string)}
}

// ParseCookies parses a raw Cookie header string: segments split on ";",
// trimmed, split on the first "=", both halves URL-unescaped. A segment that
// fails to unescape is kept verbatim.
//
// Parsing an empty (but present) header yields a jar with a single entry
// under the empty name, because splitting "" on ";" yields one empty
// segment. Callers that want an empty jar for an absent header must not call
// ParseCookies for it; [NewRequest] does this.
func ParseCookies(header string) *CookieJar {
	jar := NewCookieJar()

	for _, segment := range strings.Split(header, ";") {
		segment = strings.TrimSpace(segment)

		name, val, _ := strings.Cut(segment, "=")
		if unescaped, err := url.QueryUnescape(name); err == nil {
			name = unescaped
		}

		if unescaped, err := url.QueryUnescape(val); err == nil {
			val = unescaped
		}

		jar.Set(name, val)
	}

	return jar
}

// Get returns the value for the named cookie.
func (j *CookieJar) Get(name string) (string, bool) {
	v, ok := j.vals[name]
	return v, ok
}

// Set stores a value under a name. New names append to the jar's order,
// existing names are overwritten in place.
func (j *CookieJar) Set(name, value string) {
	if _, exists := j.vals[name]; !exists {
		j.names = append(j.names, name)
	}

	j.vals[name] = value
}

// Len returns the number of entries in the jar.
func (j *CookieJar) Len() int {
	return len(j.names)
}

// Names returns the cookie names in insertion order.
func (j *CookieJar) Names() []string {
	return append([]string(nil), j.names...)
}

// String serializes the jar back to Cookie header format, URL-escaping names
// and values and joining the pairs with ";".
func (j *CookieJar) String() string {
	pairs := lo.Map(j.names, func(name string, _ int) string {
		return url.QueryEscape(name) + "=" + url.QueryEscape(j.vals[name])
	})

	return strings.Join(pairs, ";")
}
