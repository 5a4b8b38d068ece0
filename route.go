package rhttp

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Route binds a method and an anchored path pattern to a handler. Immutable
// after construction.
type Route struct {
	method  string
	source  string
	pattern *regexp.Regexp
	handler Handler
	name    string
}

// newRoute compiles the pattern source, anchoring it at both ends so partial
// path matches never succeed. The stored method is lowercased.
func newRoute(method, pattern string, handler Handler, name string) (*Route, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, errors.Wrapf(err, "compile route pattern %q", pattern)
	}

	return &Route{
		method:  strings.ToLower(method),
		source:  pattern,
		pattern: re,
		handler: handler,
		name:    name,
	}, nil
}

// match reports whether the route matches the request's method and full path,
// returning the pattern's capture groups in order.
func (rt *Route) match(r *Request) ([]string, bool) {
	if !strings.EqualFold(rt.method, r.Method) {
		return nil, false
	}

	m := rt.pattern.FindStringSubmatch(r.URL.Path)
	if m == nil {
		return nil, false
	}

	return m[1:], true
}

// Routes is an ordered route registry under construction. Register all routes
// first, then hand it to [NewApp]; registration order determines match
// priority (first registered, first matched). A Routes value is not safe for
// concurrent use; the [App] built from it is.
type Routes struct {
	list []*Route
	errs []error
}

// NewRoutes inits an empty route registry.
func NewRoutes() *Routes {
	return &Routes{}
}

// Handle registers a handler for the given method and pattern. The pattern is
// a regular expression source, anchored implicitly at both ends. An optional
// name makes the route reversible via [App.Reverse]. Pattern errors are
// collected and surfaced by [NewApp].
func (r *Routes) Handle(method, pattern string, handler Handler, name ...string) *Routes {
	var routeName string
	if len(name) > 0 {
		routeName = name[0]
	}

	rt, err := newRoute(method, pattern, handler, routeName)
	if err != nil {
		r.errs = append(r.errs, err)
		return r
	}

	r.list = append(r.list, rt)

	return r
}

// Get registers a handler for GET requests on the pattern.
func (r *Routes) Get(pattern string, handler HandlerFunc, name ...string) *Routes {
	return r.Handle(http.MethodGet, pattern, handler, name...)
}

// Post registers a handler for POST requests on the pattern.
func (r *Routes) Post(pattern string, handler HandlerFunc, name ...string) *Routes {
	return r.Handle(http.MethodPost, pattern, handler, name...)
}

// Put registers a handler for PUT requests on the pattern.
func (r *Routes) Put(pattern string, handler HandlerFunc, name ...string) *Routes {
	return r.Handle(http.MethodPut, pattern, handler, name...)
}

// Delete registers a handler for DELETE requests on the pattern.
func (r *Routes) Delete(pattern string, handler HandlerFunc, name ...string) *Routes {
	return r.Handle(http.MethodDelete, pattern, handler, name...)
}

// Options registers a handler for OPTIONS requests on the pattern.
func (r *Routes) Options(pattern string, handler HandlerFunc, name ...string) *Routes {
	return r.Handle(http.MethodOptions, pattern, handler, name...)
}

// err collapses registration errors, if any.
func (r *Routes) err() error {
	if len(r.errs) == 0 {
		return nil
	}

	return errors.Join(r.errs...)
}
