// Package http provides an HTTP-based implementation of
// lexdoc.Downloader for retrieving PDF documents from URLs.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/lexdoc"
)

// DefaultDownloadTimeout is the default timeout for PDF downloads.
// Court-system PDF endpoints can be slow, hence the generous default.
const DefaultDownloadTimeout = 30 * time.Second

// Ensure Fetcher implements lexdoc.Downloader at compile time.
var _ lexdoc.Downloader = (*Fetcher)(nil)

// Fetcher downloads PDF byte streams over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultDownloadTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultDownloadTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Download retrieves the byte stream from the given URL.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, lexdoc.Errorf(lexdoc.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
