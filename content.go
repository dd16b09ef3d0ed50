package helpview

import (
	"context"
	"io"
	"net/url"
	"path"
)

// Location is a resolved document address, such as a file: or https: URL.
type Location string

// DisplayName returns the file name of the document at l.
func (l Location) DisplayName() string {
	u, err := url.Parse(string(l))
	if err != nil || u.Path == "" {
		return path.Base(string(l))
	}
	return path.Base(u.Path)
}

// ContentOpener opens documents for one family of locations.
type ContentOpener interface {
	// Open returns a stream of the document text.
	// Returns ENOTFOUND or ECONTENT if the document cannot be read.
	Open(ctx context.Context, loc Location) (io.ReadCloser, error)

	// Exists reports whether a readable document exists at loc.
	Exists(ctx context.Context, loc Location) bool
}

// ContentResolver resolves targets to locations and opens their text.
type ContentResolver interface {
	// Resolve returns the location mapped to target.
	// Returns false if the target is not mapped.
	Resolve(target string) (Location, bool)

	// OpenText returns a stream of the document text at loc.
	// Returns ECONTENT or ENOTFOUND on missing or unreadable content.
	OpenText(ctx context.Context, loc Location) (io.ReadCloser, error)
}
