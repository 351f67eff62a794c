package github

import (
	"net/http"
	"strings"
)

// Option configures a Format (functional options pattern).
type Option func(*Format)

// WithRepoID overrides the registered identifier. Default is the repository
// name, so New("o", "r") answers to "github:r".
func WithRepoID(id string) Option {
	return func(f *Format) {
		f.repoID = id
	}
}

// WithHeader sets one request header. Overrides the seeded defaults
// (raw-content Accept, API version) on key collision.
func WithHeader(key, value string) Option {
	return func(f *Format) {
		f.headers[key] = value
	}
}

// WithHeaders sets request headers from a map. Later options win over
// earlier ones and over the defaults, per key.
func WithHeaders(headers map[string]string) Option {
	return func(f *Format) {
		for key, value := range headers {
			f.headers[key] = value
		}
	}
}

// WithHTTPClient sets the HTTP client. The default bounds connect and read
// at 3 seconds each. If c is nil, the default client is left unchanged.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Format) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// WithBaseURL sets the API root, e.g. a GitHub Enterprise host. Default is
// DefaultBaseURL. A trailing slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(f *Format) {
		if baseURL != "" {
			f.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}
