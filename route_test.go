package rhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvdk/rhttp"
	"github.com/stretchr/testify/require"
)

func reply(body string) rhttp.HandlerFunc {
	return func(ctx context.Context, r *rhttp.Request, params ...string) (*rhttp.Response, error) {
		return rhttp.Text(body), nil
	}
}

func newRecorded(method, target string) (*httptest.ResponseRecorder, *http.Request) {
	return httptest.NewRecorder(), httptest.NewRequest(method, target, nil)
}

func serve(t *testing.T, app *rhttp.App, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec, req := httptest.NewRecorder(), httptest.NewRequest(method, target, nil)
	app.ServeHTTP(rec, req)

	return rec
}

func TestFirstRegisteredWins(t *testing.T) {
	routes := rhttp.NewRoutes()
	routes.Get(`/items/([0-9]+)`, reply("first"))
	routes.Get(`/items/(.*)`, reply("second"))

	app, err := rhttp.NewApp(routes)
	require.NoError(t, err)

	rec := serve(t, app, http.MethodGet, "/items/42")
	require.Equal(t, "first", rec.Body.String())

	rec = serve(t, app, http.MethodGet, "/items/foo")
	require.Equal(t, "second", rec.Body.String())
}

func TestMethodMatchIsCaseInsensitive(t *testing.T) {
	routes := rhttp.NewRoutes()
	routes.Handle("PoSt", `/submit`, reply("ok"))

	app, err := rhttp.NewApp(routes)
	require.NoError(t, err)

	for _, method := range []string{"post", "POST", "PoSt"} {
		rec := serve(t, app, method, "/submit")
		require.Equal(t, http.StatusOK, rec.Code, method)
	}

	rec := serve(t, app, http.MethodGet, "/submit")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatternIsAnchored(t *testing.T) {
	routes := rhttp.NewRoutes()
	routes.Get(`/items/([0-9]+)`, reply("ok"))

	app, err := rhttp.NewApp(routes)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, serve(t, app, http.MethodGet, "/items/12").Code)
	require.Equal(t, http.StatusNotFound, serve(t, app, http.MethodGet, "/items/12/extra").Code)
	require.Equal(t, http.StatusNotFound, serve(t, app, http.MethodGet, "/prefix/items/12").Code)
}

func TestCaptureGroupsPassedPositionally(t *testing.T) {
	routes := rhttp.NewRoutes()
	routes.Get(`/users/([0-9]+)/posts/([a-z]+)`, func(ctx context.Context, r *rhttp.Request, params ...string) (*rhttp.Response, error) {
		require.Len(t, params, 2)
		return rhttp.Text(params[0] + ":" + params[1]), nil
	})

	app, err := rhttp.NewApp(routes)
	require.NoError(t, err)

	rec := serve(t, app, http.MethodGet, "/users/7/posts/hello")
	require.Equal(t, "7:hello", rec.Body.String())
}

func TestInvalidPatternSurfacesAtNewApp(t *testing.T) {
	routes := rhttp.NewRoutes()
	routes.Get(`/items/([0-9]+`, reply("ok"))

	_, err := rhttp.NewApp(routes)
	require.ErrorContains(t, err, "compile route pattern")
}

func TestDuplicateRouteNameRejected(t *testing.T) {
	routes := rhttp.NewRoutes()
	routes.Get(`/a`, reply("a"), "dup")
	routes.Get(`/b`, reply("b"), "dup")

	_, err := rhttp.NewApp(routes)
	require.ErrorContains(t, err, `"dup" already exists`)
}
