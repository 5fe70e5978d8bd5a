package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers keep resty's fluent request
// API while the rest of the code passes around a single named type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient backed by a fresh resty.Client.
// Callers configure base URL, timeout and headers on the returned value;
// nothing is shared between instances.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
