package helpview

import (
	"context"
	"io"
	"net/url"
	"time"
)

// Helpset is the configuration of one content set: its title, home page,
// document mappings, table of contents and index.
type Helpset struct {
	Title    string            `json:"title"`
	HomeID   string            `json:"homeId"`
	Mappings []DocumentMapping `json:"mappings"`
	TOC      []*TOCItem        `json:"toc"`
	Index    []*IndexItem      `json:"index"`
}

// DocumentMapping maps a target to a document URL, relative to the helpset base.
type DocumentMapping struct {
	Target string `json:"target"`
	URL    string `json:"url"`
}

// Validate returns an error if the helpset contains invalid fields.
func (h *Helpset) Validate() error {
	for _, m := range h.Mappings {
		if m.Target == "" {
			return Errorf(EINVALID, "document mapping target required")
		}
		if m.URL == "" {
			return Errorf(EINVALID, "document mapping URL required for target %q", m.Target)
		}
		if _, err := url.Parse(m.URL); err != nil {
			return Errorf(EINVALID, "malformed document URL %q for target %q", m.URL, m.Target)
		}
	}
	return nil
}

// HelpsetDecoder parses helpset configuration.
type HelpsetDecoder interface {
	// DecodeHelpset reads a helpset from r.
	// Returns EINVALID if the configuration is malformed.
	DecodeHelpset(r io.Reader) (*Helpset, error)
}

// Manual is a helpset file registered with the browser.
type Manual struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ConfigPath string    `json:"configPath"`
	Checksum   string    `json:"checksum"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the manual contains invalid fields.
func (m *Manual) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "manual name required")
	}
	if m.ConfigPath == "" {
		return Errorf(EINVALID, "manual config path required")
	}
	return nil
}

// ManualService represents a service for managing registered manuals.
type ManualService interface {
	// CreateManual registers a new manual. It is loaded after every
	// manual registered before it.
	// Returns ECONFLICT if a manual with the same name exists.
	CreateManual(ctx context.Context, manual *Manual) error

	// FindManualByID retrieves a manual by ID.
	// Returns ENOTFOUND if manual does not exist.
	FindManualByID(ctx context.Context, id string) (*Manual, error)

	// FindManuals retrieves manuals matching the filter in load order.
	FindManuals(ctx context.Context, filter ManualFilter) ([]*Manual, error)

	// DeleteManual removes a manual registration.
	// Returns ENOTFOUND if manual does not exist.
	DeleteManual(ctx context.Context, id string) error
}

// ManualFilter represents a filter for FindManuals.
type ManualFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
