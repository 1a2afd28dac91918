package querystate

import (
	"net/url"
	"sync"
)

// Entry is one page in a History.
type Entry struct {
	URL     string
	ScrollY int
}

// History is an in-memory session history. It implements both Location
// and Navigator, so a Manager built on it behaves like one running in a
// browser tab.
type History struct {
	mu      sync.Mutex
	entries []Entry
	index   int
}

func NewHistory(initial string) (*History, error) {
	u, err := url.Parse(initial)
	if err != nil {
		return nil, err
	}
	return &History{entries: []Entry{{URL: u.String()}}}, nil
}

// Current returns a copy of the URL of the active entry.
func (h *History) Current() *url.URL {
	h.mu.Lock()
	defer h.mu.Unlock()

	// entries are validated on the way in
	u, _ := url.Parse(h.entries[h.index].URL)
	return u
}

// Replace swaps the active entry for target. The scroll offset is kept
// unless opts.Scroll is set.
func (h *History) Replace(target string, opts Options) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	resolved, err := h.resolve(target)
	if err != nil {
		return err
	}
	entry := Entry{URL: resolved, ScrollY: h.entries[h.index].ScrollY}
	if opts.Scroll {
		entry.ScrollY = 0
	}
	h.entries[h.index] = entry
	return nil
}

// Push adds target after the active entry, discarding forward entries.
func (h *History) Push(target string, opts Options) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	resolved, err := h.resolve(target)
	if err != nil {
		return err
	}
	entry := Entry{URL: resolved}
	if !opts.Scroll {
		entry.ScrollY = h.entries[h.index].ScrollY
	}
	h.entries = append(h.entries[:h.index+1], entry)
	h.index++
	return nil
}

// Back moves to the previous entry. It reports false at the start.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// ScrollTo records the viewport offset of the active entry.
func (h *History) ScrollTo(y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index].ScrollY = y
}

// ScrollY returns the viewport offset of the active entry.
func (h *History) ScrollY() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].ScrollY
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of all entries.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), h.entries...)
}

func (h *History) resolve(target string) (string, error) {
	base, err := url.Parse(h.entries[h.index].URL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
