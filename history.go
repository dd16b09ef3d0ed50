package helpview

import "context"

// History is a browser-style navigation history. Navigating from a position
// other than the newest entry discards every entry after that position.
//
// History is not safe for concurrent use.
type History[E any] struct {
	entries  []E
	position int
}

// NewHistory returns an empty history.
func NewHistory[E any]() *History[E] {
	return &History[E]{position: -1}
}

// RestoreHistory rebuilds a history from saved entries and position.
func RestoreHistory[E any](entries []E, position int) (*History[E], error) {
	if len(entries) == 0 {
		if position != -1 {
			return nil, Errorf(EINVALID, "history position %d out of range for empty history", position)
		}
		return NewHistory[E](), nil
	}
	if position < 0 || position >= len(entries) {
		return nil, Errorf(EINVALID, "history position %d out of range [0, %d)", position, len(entries))
	}
	return &History[E]{
		entries:  append([]E(nil), entries...),
		position: position,
	}, nil
}

// NavigateTo drops every entry after the current position, appends e and
// makes it current.
func (h *History[E]) NavigateTo(e E) {
	h.entries = append(h.entries[:h.position+1], e)
	h.position++
}

// Back moves to the previous entry and returns it.
// Returns false and leaves the history unchanged on the first entry.
func (h *History[E]) Back() (E, bool) {
	if !h.IsBackActive() {
		var zero E
		return zero, false
	}
	h.position--
	return h.entries[h.position], true
}

// Forward moves to the next entry and returns it.
// Returns false and leaves the history unchanged on the newest entry.
func (h *History[E]) Forward() (E, bool) {
	if !h.IsForwardActive() {
		var zero E
		return zero, false
	}
	h.position++
	return h.entries[h.position], true
}

// Current returns the entry at the current position.
// Returns false if the history is empty.
func (h *History[E]) Current() (E, bool) {
	if h.position < 0 {
		var zero E
		return zero, false
	}
	return h.entries[h.position], true
}

// IsBackActive reports whether Back would move.
func (h *History[E]) IsBackActive() bool {
	return h.position > 0
}

// IsForwardActive reports whether Forward would move.
func (h *History[E]) IsForwardActive() bool {
	return h.position < len(h.entries)-1
}

// Len returns the number of entries.
func (h *History[E]) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History[E]) Entries() []E {
	return append([]E(nil), h.entries...)
}

// Position returns the index of the current entry, or -1 if empty.
func (h *History[E]) Position() int {
	return h.position
}

// HistoryService persists the navigation history between sessions.
type HistoryService interface {
	// LoadHistory returns the saved history.
	// Returns an empty history if nothing has been saved.
	LoadHistory(ctx context.Context) (*History[Location], error)

	// SaveHistory replaces the saved history with h.
	SaveHistory(ctx context.Context, h *History[Location]) error
}
