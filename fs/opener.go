// Package fs provides file-based access to helpsets and their documents.
package fs

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/helpview"
)

// Ensure Opener implements helpview.ContentOpener at compile time.
var _ helpview.ContentOpener = (*Opener)(nil)

// Opener reads documents at file: locations.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the file at loc.
// Returns ENOTFOUND if the file does not exist and ECONTENT if it cannot be read.
func (o *Opener) Open(ctx context.Context, loc helpview.Location) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := LocationToPath(loc)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, helpview.Errorf(helpview.ENOTFOUND, "document not found: %s", path)
	} else if err != nil {
		return nil, helpview.Errorf(helpview.ECONTENT, "opening %s: %v", path, err)
	}
	return f, nil
}

// Exists reports whether loc names a regular file.
func (o *Opener) Exists(ctx context.Context, loc helpview.Location) bool {
	path, err := LocationToPath(loc)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// LocationToPath converts a file: location to a local file path.
// Any query or fragment is ignored.
func LocationToPath(loc helpview.Location) (string, error) {
	u, err := url.Parse(string(loc))
	if err != nil {
		return "", helpview.Errorf(helpview.EINVALID, "malformed location %q", loc)
	}
	if u.Scheme != "file" {
		return "", helpview.Errorf(helpview.EINVALID, "not a file location: %s", loc)
	}
	if u.Path == "" {
		return "", helpview.Errorf(helpview.EINVALID, "file location has no path: %s", loc)
	}
	return filepath.FromSlash(u.Path), nil
}

// PathToURL converts a local path to an absolute file: URL.
func PathToURL(path string) (*url.URL, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}

// BaseURL returns the URL of the directory containing the helpset file at
// path. Relative document URLs in the helpset resolve against it.
func BaseURL(path string) (*url.URL, error) {
	u, err := PathToURL(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}
