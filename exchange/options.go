package exchange

import (
	"net/http"
	"time"
)

type Options struct {
	// Timeout of zero means the call may take as long as the server does.
	Timeout time.Duration
	// Transport replaces the cloned default transport when set.
	Transport http.RoundTripper
}
