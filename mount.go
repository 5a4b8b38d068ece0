package rhttp

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// Mount registers a sub-app under a path prefix for all supported methods.
// The sub-app dispatches a clone of the request with the prefix stripped from
// the path ("" becomes "/"); its own not-found and error handlers apply
// within the subtree. Outer middleware sees the original path.
func (r *Routes) Mount(prefix string, sub *App) *Routes {
	pattern := regexp.QuoteMeta(prefix) + `(?:/.*)?`
	handler := stripPrefix(prefix, sub)

	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	} {
		r.Handle(method, pattern, handler)
	}

	return r
}

// stripPrefix forwards requests to the sub-app with the mount prefix removed.
func stripPrefix(prefix string, sub *App) Handler {
	return HandlerFunc(func(ctx context.Context, r *Request, _ ...string) (*Response, error) {
		p := strings.TrimPrefix(r.URL.Path, prefix)
		if p == "" {
			p = "/"
		}

		u := new(url.URL)
		*u = *r.URL
		u.Path = p

		if u.RawPath != "" {
			rp := strings.TrimPrefix(u.RawPath, prefix)
			if rp == "" {
				rp = "/"
			}

			u.RawPath = rp
		}

		return sub.Dispatch(ctx, r.withURL(u)), nil
	})
}
