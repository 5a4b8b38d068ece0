package rhttp

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts dispatched requests and observes handler latency on the
// given registerer. The status label is taken from the returned descriptor;
// handler errors count as 500 regardless of how the error handler responds.
func Metrics(reg prometheus.Registerer) Middleware {
	requests := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "rhttp_requests_total",
		Help: "Requests dispatched, by method and response status.",
	}, []string{"method", "status"})

	duration := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rhttp_request_duration_seconds",
		Help:    "Handler latency in seconds, by method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, r *Request, params ...string) (*Response, error) {
			start := time.Now()

			resp, err := next.ServeRoute(ctx, r, params...)

			status := http.StatusOK
			switch {
			case err != nil:
				status = http.StatusInternalServerError
			case resp != nil:
				status = resp.Status()
			}

			requests.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
			duration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())

			return resp, err
		})
	}
}
