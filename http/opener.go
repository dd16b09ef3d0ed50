// Package http provides a helpview.ContentOpener for documents served over
// HTTP. Pages are read as served; no JavaScript is executed.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/helpview"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// Ensure Opener implements helpview.ContentOpener at compile time.
var _ helpview.ContentOpener = (*Opener)(nil)

// Opener retrieves documents at http: and https: locations.
type Opener struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures an Opener.
type Option func(*Opener)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *Opener) {
		o.timeout = d
	}
}

// WithClient sets the HTTP client. The client's own timeout is replaced by
// the configured timeout.
func WithClient(c *http.Client) Option {
	return func(o *Opener) {
		o.client = c
	}
}

// NewOpener creates a new HTTP-based Opener.
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.client == nil {
		o.client = &http.Client{}
	}
	o.client.Timeout = o.timeout

	return o
}

// Open issues a GET request for loc and returns the response body.
// Returns ENOTFOUND for 404 responses and ECONTENT for other failures.
func (o *Opener) Open(ctx context.Context, loc helpview.Location) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, string(loc), nil)
	if err != nil {
		return nil, helpview.Errorf(helpview.EINVALID, "malformed location %q", loc)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, helpview.Errorf(helpview.ECONTENT, "fetching %s: %v", loc, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, helpview.Errorf(helpview.ENOTFOUND, "document not found: %s", loc)
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, helpview.Errorf(helpview.ECONTENT, "HTTP %d for %s", resp.StatusCode, loc)
	}
	return resp.Body, nil
}

// Exists reports whether a HEAD request for loc returns 200 OK.
func (o *Opener) Exists(ctx context.Context, loc helpview.Location) bool {
	ok, err := o.head(ctx, string(loc))
	return err == nil && ok
}

func (o *Opener) head(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
