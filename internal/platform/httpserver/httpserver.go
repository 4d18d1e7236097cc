package httpserver

import (
	"net/http"
	"time"
)

// New builds the HTTP server. Timeouts are sized for short JSON exchanges;
// nothing in this API streams or long-polls.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
