package rhttp_test

import (
	"testing"

	"github.com/mvdk/rhttp"
	"github.com/stretchr/testify/require"
)

func TestInferContentType(t *testing.T) {
	require.Equal(t, "application/json", rhttp.InferContentType("a.json"))
	require.Equal(t, "application/javascript", rhttp.InferContentType("bundle.js"))
	require.Equal(t, "text/html", rhttp.InferContentType("index.html"))
	require.Equal(t, "text/css", rhttp.InferContentType("style.css"))
	require.Equal(t, "text/plain", rhttp.InferContentType("notes.txt"))

	// only the substring after the last dot counts
	require.Equal(t, "application/octet-stream", rhttp.InferContentType("a.tar.gz"))
	require.Equal(t, "application/octet-stream", rhttp.InferContentType("noext"))
	require.Equal(t, "application/octet-stream", rhttp.InferContentType(""))
}
