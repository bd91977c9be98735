package lexdoc

import "context"

// Downloader retrieves a PDF byte stream from a URL.
type Downloader interface {
	// Download fetches the resource at url. The context controls
	// timeout and cancellation. Returns EUNAVAILABLE for non-2xx
	// responses.
	Download(ctx context.Context, url string) ([]byte, error)
}
