package rhttp

import "strings"

// mimeByExtension maps the supported filename extensions to their MIME type.
var mimeByExtension = map[string]string{
	"json": "application/json",
	"js":   "application/javascript",
	"html": "text/html",
	"css":  "text/css",
	"txt":  "text/plain",
}

// InferContentType returns the MIME type for a filename based on the
// substring after its last ".". Unknown or missing extensions yield
// application/octet-stream.
func InferContentType(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "application/octet-stream"
	}

	if mime, ok := mimeByExtension[filename[idx+1:]]; ok {
		return mime
	}

	return "application/octet-stream"
}
