package internal

import (
	"fmt"
	"net/http"
)

// HTTPError sends a plain-text error response
func HTTPError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)

	fmt.Fprintf(w, "error: %s\n", msg)
}

// SetMustRevalidate sets a response's cache-control to must-revalidate
func SetMustRevalidate(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "must-revalidate, max-age=0")
}
