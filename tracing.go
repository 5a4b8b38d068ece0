package rhttp

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/mvdk/rhttp"

// Tracing starts a span per dispatched request, named "METHOD /path". The
// TracerProvider is explicitly injected to avoid global state; exporter and
// propagator setup belong to the hosting runtime. Handler errors mark the
// span as failed before they are downgraded by the error boundary.
func Tracing(tp trace.TracerProvider) Middleware {
	tracer := tp.Tracer(tracerName)

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, r *Request, params ...string) (*Response, error) {
			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			resp, err := next.ServeRoute(ctx, r, params...)

			status := http.StatusOK
			switch {
			case err != nil:
				status = http.StatusInternalServerError
			case resp != nil:
				status = resp.Status()
			}

			span.SetAttributes(attribute.Int("http.response.status_code", status))

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			return resp, err
		})
	}
}
