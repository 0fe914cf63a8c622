package curated

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production API endpoint. Mainly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPageSize sets the page size used when walking paged listings to
// completion. Individual list calls can still request their own per-page
// value through their options.
func WithPageSize(pageSize int) Option {
	return func(c *Client) {
		if pageSize > 0 {
			c.pageSize = pageSize
		}
	}
}
