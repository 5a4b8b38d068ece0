package rhttp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Middleware for cross-cutting concerns on the descriptor level.
type Middleware func(Handler) Handler

// Wrap takes the inner handler h and wraps it with middleware. The order is that of the Gorilla and Chi router. That
// is: the middleware provided first is called first and is the "outer" most wrapping, the middleware provided last
// will be the "inner most" wrapping (closest to the handler).
func Wrap(h Handler, m ...Middleware) Handler {
	if len(m) < 1 {
		return h
	}

	wrapped := h
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}

type ctxKey int

const requestIDKey ctxKey = iota

// HeaderRequestID is the header carrying the request id end-to-end.
const HeaderRequestID = "X-Request-ID"

// RequestIDFrom returns the request id placed on the context by [RequestID],
// or "" when the middleware did not run.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// normalizeRequestID guards against header injection and oversized ids.
func normalizeRequestID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return ""
	}

	const maxLen = 128
	if len(v) > maxLen {
		v = v[:maxLen]
	}

	return v
}

// RequestID accepts an inbound X-Request-ID header or generates a fresh id,
// puts it on the context and echoes it on the response. A nil gen falls back
// to uuid generation.
func RequestID(gen func() string) Middleware {
	if gen == nil {
		gen = uuid.NewString
	}

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, r *Request, params ...string) (*Response, error) {
			id := normalizeRequestID(r.Header.Get(HeaderRequestID))
			if id == "" {
				id = gen()
			}

			resp, err := next.ServeRoute(context.WithValue(ctx, requestIDKey, id), r, params...)
			if err != nil {
				return resp, err
			}

			if resp == nil {
				resp = NoContent()
			}

			return resp.WithHeader(HeaderRequestID, id), nil
		})
	}
}

// Recover turns handler panics into errors so they hit the app's error
// boundary instead of tearing down the serving goroutine. http.ErrAbortHandler
// is re-panicked; the transport uses it as a control signal.
func Recover(logs Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, r *Request, params ...string) (resp *Response, err error) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler { //nolint:errorlint // sentinel compare on purpose
						panic(rvr)
					}

					logs.LogPanic(r, rvr)
					resp, err = nil, NewError(CodeInternalServerError, errors.Errorf("panic: %v", rvr))
				}
			}()

			return next.ServeRoute(ctx, r, params...)
		})
	}
}

// AccessLog logs one line per dispatched request with the descriptor's status
// and the handler latency.
func AccessLog(logs *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, r *Request, params ...string) (*Response, error) {
			start := time.Now()

			resp, err := next.ServeRoute(ctx, r, params...)

			status := http.StatusInternalServerError
			if err == nil && resp != nil {
				status = resp.Status()
			} else if err == nil {
				status = http.StatusOK
			}

			logs.Info("request served",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.String("request_id", RequestIDFrom(ctx)),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)

			return resp, err
		})
	}
}
