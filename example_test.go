package rhttp_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/carlmjohnson/requests"
	"github.com/mvdk/rhttp"
)

func Example() {
	routes := rhttp.NewRoutes()

	routes.Get(`/items/([0-9]+)`, func(ctx context.Context, r *rhttp.Request, params ...string) (*rhttp.Response, error) {
		return rhttp.JSON(map[string]string{
			"id":   params[0],
			"name": "Example Item",
		}), nil
	}, "get-item")

	app, _ := rhttp.NewApp(routes)

	// Generate URL by route name
	url, _ := app.Reverse("get-item", "123")
	fmt.Println("URL:", url)

	// Test the handler
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	app.ServeHTTP(rec, req)

	fmt.Println("Status:", rec.Code)
	fmt.Println("Content-Type:", rec.Header().Get("Content-Type"))
	// Output:
	// URL: /items/123
	// Status: 200
	// Content-Type: application/json
}

func ExampleApp_ServeHTTP() {
	routes := rhttp.NewRoutes()
	routes.Get(`/greet/([a-z]+)`, func(ctx context.Context, r *rhttp.Request, params ...string) (*rhttp.Response, error) {
		return rhttp.Text("hello, " + params[0]), nil
	})

	app, _ := rhttp.NewApp(routes)

	// the hosting runtime owns the actual server; here a test server stands in
	srv := httptest.NewServer(app)
	defer srv.Close()

	var body string

	err := requests.URL(srv.URL).Path("/greet/gopher").ToString(&body).Fetch(context.Background())
	fmt.Println(body, err)
	// Output:
	// hello, gopher <nil>
}

func ExampleText() {
	rec := httptest.NewRecorder()

	resp := rhttp.Text("hi").
		WithStatus(http.StatusAccepted).
		WithHeader("X-Flavor", "plain")

	_ = resp.Encode(rec)

	fmt.Println(rec.Code, rec.Body.String(), rec.Header().Get("X-Flavor"))
	// Output:
	// 202 hi plain
}

func ExampleParseCookies() {
	jar := rhttp.ParseCookies("session=abc123; theme=dark")

	session, _ := jar.Get("session")
	fmt.Println(session)
	fmt.Println(jar.String())
	// Output:
	// abc123
	// session=abc123;theme=dark
}

func ExampleWithMiddleware() {
	routes := rhttp.NewRoutes()
	routes.Get(`/ping`, func(ctx context.Context, r *rhttp.Request, params ...string) (*rhttp.Response, error) {
		return rhttp.Text("pong"), nil
	})

	app, _ := rhttp.NewApp(routes, rhttp.WithMiddleware(
		rhttp.RequestID(func() string { return "req-123" }),
	))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	app.ServeHTTP(rec, req)

	fmt.Println("Body:", rec.Body.String())
	fmt.Println("Request ID:", rec.Header().Get(rhttp.HeaderRequestID))
	// Output:
	// Body: pong
	// Request ID: req-123
}
