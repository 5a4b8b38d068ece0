// Package rhttp provides regex-routed HTTP dispatch with descriptor-based responses.
//
// # Overview
//
// rhttp matches an incoming request's method and path against an ordered list
// of regular-expression routes and invokes the first matching handler. A
// handler does not write to the connection: it returns a response descriptor
// that the dispatcher encodes onto the transport, with content-type headers
// derived from the descriptor's body variant. Handler errors never escape the
// dispatch boundary; they are logged and downgraded to a 500 response.
//
// A minimal example:
//
//	routes := rhttp.NewRoutes()
//	routes.Get(`/items/([0-9]+)`, func(ctx context.Context, r *rhttp.Request, params ...string) (*rhttp.Response, error) {
//	    item, err := db.GetItem(params[0])
//	    if err != nil {
//	        return nil, err
//	    }
//	    return rhttp.JSON(item), nil
//	}, "get-item")
//
//	app, err := rhttp.NewApp(routes)
//
// The resulting [App] implements http.Handler; the hosting runtime owns the
// listener, TLS, and connection handling entirely.
//
// # Routing
//
// Patterns are regular expression sources, implicitly anchored at both ends:
// `/items/([0-9]+)` matches "/items/12" and never "/items/12/extra". Capture
// groups are passed to the handler positionally, after the request. Method
// comparison is case-insensitive. Routes are scanned in registration order
// and the first match wins; the table is fixed once [NewApp] returns, so any
// number of in-flight requests may read it concurrently.
//
// # Handler Signature
//
// Handlers receive a context, a [Request], and the captured path segments,
// and return a [*Response] descriptor:
//
//	func(ctx context.Context, r *rhttp.Request, params ...string) (*rhttp.Response, error)
//
// A descriptor carries exactly one body variant, created with [JSON], [Text],
// [HTML], [Stream] or [NoContent], plus an optional status and headers:
//
//	return rhttp.JSON(map[string]int{"a": 1}).WithStatus(201), nil
//
// Explicit headers are layered over the variant's default content-type and
// may override it. When a handler returns an error the descriptor is
// discarded, the error is logged, and the app's error handler produces the
// response instead (a plain-text 500 by default).
//
// # Requests
//
// [Request] exposes the parsed method, URL, query parameters, headers and a
// [CookieJar] eagerly. The body is read lazily through [Request.FormData],
// [Request.JSON] or [Request.Text]; the underlying transport stream is
// single-use, so at most one of them may be called, once.
//
// # Middleware
//
// [Middleware] wraps handlers on the descriptor level and is applied with
// [WithMiddleware]; the first middleware given is the outermost wrapping, the
// order of the Gorilla and Chi routers. Because middleware sees the returned
// descriptor rather than a byte stream, it can inspect the status or replace
// the response outright. [RequestID], [AccessLog], [Recover], [Metrics] and
// [Tracing] cover the common cross-cutting concerns.
//
// # GraphQL
//
// [GraphQLHandler] dispatches GraphQL-over-HTTP requests to a graphql-go
// schema: GET with query/operationName/variables parameters, or POST with an
// application/json or application/graphql body. Requests that do not resolve
// to a query yield a plain-text 400.
//
//	routes.Post(`/graphql`, rhttp.GraphQLHandler(schema))
//
// # Named Routes and URL Reversing
//
// Routes can be named for URL generation:
//
//	routes.Get(`/users/([0-9]+)`, getUser, "get-user")
//	url, err := app.Reverse("get-user", "123") // "/users/123"
//
// Reversing substitutes the provided values for the pattern's capture groups.
//
// # Configuration
//
// [ParseEnv] reads the RHTTP_* environment variables and [NewLogger] builds a
// zap logger from them; [Environment.AppOptions] bridges the result to
// [NewApp]. The rhttpfx subpackage assembles all of it for fx applications.
package rhttp
