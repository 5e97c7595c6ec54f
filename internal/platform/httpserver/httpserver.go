// Package httpserver builds the process http.Server.
package httpserver

import (
	"net/http"
	"time"
)

// New returns an HTTP server with timeouts suited to the court API. Handler
// timeouts are enforced separately by the timeout middleware.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
