package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request tabkeeper makes.
const UserAgent = "tabkeeper"

// HTTPClient embeds *resty.Client so callers use its request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for the service at baseURL. Requests never
// retry; a zero timeout means none.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
