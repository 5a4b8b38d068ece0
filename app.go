package rhttp

import (
	"context"
	"log"
	"net/http"
)

// ErrorHandler produces the response descriptor for a handler error. The
// default implementation ignores the error and returns a plain-text 500.
type ErrorHandler func(ctx context.Context, r *Request, err error) *Response

// App dispatches requests over an immutable route table. It implements
// http.Handler; the hosting runtime owns the listener and connections. All
// state is fixed at construction, so an App is safe for any number of
// concurrently in-flight requests.
type App struct {
	routes       []*Route
	reverser     *Reverser
	logs         Logger
	notFound     Handler
	errorHandler ErrorHandler
	maxBodyBytes int64
}

// Option configures the App.
type Option func(*App)

// WithLogger sets the logger informed about dispatch events.
func WithLogger(logs Logger) Option {
	return func(a *App) { a.logs = logs }
}

// WithNotFound overrides the handler invoked when no route matches. Errors it
// returns are downgraded by the error handler like any other handler error.
func WithNotFound(h HandlerFunc) Option {
	return func(a *App) { a.notFound = h }
}

// WithErrorHandler overrides how handler errors become responses. The handler
// must not fail: whatever descriptor it returns is encoded as-is.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) { a.errorHandler = h }
}

// WithMaxBodyBytes caps request bodies via http.MaxBytesReader before
// dispatch. Zero means no cap.
func WithMaxBodyBytes(n int64) Option {
	return func(a *App) { a.maxBodyBytes = n }
}

// WithMiddleware wraps every route handler, including the not-found handler.
// The first middleware given is the outermost wrapping. Options apply in
// order: pass WithNotFound before WithMiddleware for a wrapped override.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		for _, rt := range a.routes {
			rt.handler = Wrap(rt.handler, mw...)
		}

		a.notFound = Wrap(a.notFound, mw...)
	}
}

// NewApp builds an App from a route registry. The registry's routes are
// copied; mutating the Routes value afterwards has no effect on the App.
// Registration errors collected by the builder surface here.
func NewApp(routes *Routes, opts ...Option) (*App, error) {
	if err := routes.err(); err != nil {
		return nil, err
	}

	app := &App{
		routes:       make([]*Route, 0, len(routes.list)),
		reverser:     NewReverser(),
		logs:         NewStdLogger(log.Default()),
		errorHandler: defaultErrorHandler,
	}
	app.notFound = HandlerFunc(defaultNotFound)

	for _, rt := range routes.list {
		// copy so two apps built from one registry never share route state
		cp := *rt
		app.routes = append(app.routes, &cp)

		if rt.name == "" {
			continue
		}

		if err := app.reverser.Name(rt.name, rt.source); err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// defaultNotFound is the response for requests no route matches.
func defaultNotFound(context.Context, *Request, ...string) (*Response, error) {
	return Text("404 not found").WithStatus(http.StatusNotFound), nil
}

// defaultErrorHandler swallows the error; it was already logged at the
// dispatch boundary and must not leak into the response body.
func defaultErrorHandler(context.Context, *Request, error) *Response {
	return Text("500 internal error").WithStatus(http.StatusInternalServerError)
}

// Reverse returns the url for a named route given values for its capture
// groups.
func (a *App) Reverse(name string, vals ...string) (string, error) {
	return a.reverser.Reverse(name, vals...)
}

// Dispatch scans the route table in registration order and invokes the first
// matching handler with the request and its captured path segments. Handler
// errors are logged and converted to the error handler's descriptor; no route
// matching yields the not-found handler's descriptor. Nothing propagates past
// Dispatch.
func (a *App) Dispatch(ctx context.Context, r *Request) *Response {
	for _, rt := range a.routes {
		params, ok := rt.match(r)
		if !ok {
			continue
		}

		return a.invoke(ctx, rt.handler, r, params...)
	}

	return a.invoke(ctx, a.notFound, r)
}

func (a *App) invoke(ctx context.Context, h Handler, r *Request, params ...string) *Response {
	resp, err := h.ServeRoute(ctx, r, params...)
	if err != nil {
		a.logs.LogHandlerError(r, err)
		return a.errorHandler(ctx, r, err)
	}

	if resp == nil {
		resp = NoContent()
	}

	return resp
}

// ServeHTTP makes the app implement the http.Handler interface: it wraps the
// transport request, dispatches it and encodes the resulting descriptor.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if a.maxBodyBytes > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, a.maxBodyBytes)
	}

	req := NewRequest(r)

	resp := a.Dispatch(r.Context(), req)
	if err := resp.Encode(w); err != nil {
		a.logs.LogEncodeError(req, err)
	}
}
