package exchange

import (
	"net/http"
)

// BuildHTTPClient keeps the default redirect policy and TLS configuration.
func BuildHTTPClient(options *Options) (*http.Client, error) {
	client := http.Client{
		Timeout: options.Timeout,
	}

	if options.Transport == nil {
		client.Transport = http.DefaultTransport.(*http.Transport).Clone()
	} else {
		client.Transport = options.Transport
	}

	return &client, nil
}
