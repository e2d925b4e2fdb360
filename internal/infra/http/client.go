package http

import (
	"net/http"
	"time"
)

// NewClient returns a shared HTTP client with a sane timeout for every
// outbound call made during one run.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
