package rhttp

import "context"

// Handler serves a matched route. The params hold the pattern's capture
// groups in order. Returning an error discards the descriptor and hands the
// request to the app's error handler.
type Handler interface {
	ServeRoute(ctx context.Context, r *Request, params ...string) (*Response, error)
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc func(ctx context.Context, r *Request, params ...string) (*Response, error)

// ServeRoute implements the [Handler] interface.
func (f HandlerFunc) ServeRoute(ctx context.Context, r *Request, params ...string) (*Response, error) {
	return f(ctx, r, params...)
}
