package querystate

import (
	"errors"
	"net/url"
)

// Options control how a navigation is performed.
type Options struct {
	// Scroll resets the viewport to the top after navigating.
	Scroll bool
}

// Location exposes the live URL of a view.
type Location interface {
	Current() *url.URL
}

// Navigator performs navigations on behalf of a Manager. Replace must
// not add a history entry.
type Navigator interface {
	Replace(target string, opts Options) error
}

var ErrNoNavigator = errors.New("querystate: no navigator configured")

// Manager keeps list-view state (page, limit, sort, search) in the query
// string of the current URL. The URL is the only source of truth: every
// read parses it again and every write replaces it.
type Manager struct {
	location  Location
	navigator Navigator
}

func NewManager(location Location, navigator Navigator) *Manager {
	return &Manager{
		location:  location,
		navigator: navigator,
	}
}

// Read parses the query string of the live URL.
func (m *Manager) Read() Snapshot {
	return Parse(m.location.Current().RawQuery)
}

// Set replaces every value under key with value.
func (m *Manager) Set(key, value string) error {
	return m.SetMany(map[string]string{key: value})
}

// SetMany replaces the values of each key in updates and leaves the
// other keys untouched.
func (m *Manager) SetMany(updates map[string]string) error {
	return m.replace(m.Read().SetMany(updates))
}

// Add appends value under key, keeping existing values.
func (m *Manager) Add(key, value string) error {
	return m.replace(m.Read().Add(key, value))
}

// Remove deletes key, or only the given values of key.
func (m *Manager) Remove(key string, values ...string) error {
	return m.replace(m.Read().Remove(key, values...))
}

// Clear navigates to the bare path.
func (m *Manager) Clear() error {
	return m.replace(Snapshot{})
}

// Href returns the URL SetMany(updates) would navigate to.
func (m *Manager) Href(updates map[string]string) string {
	return m.target(m.Read().SetMany(updates))
}

// HrefWithout returns the URL Remove(key, values...) would navigate to.
func (m *Manager) HrefWithout(key string, values ...string) string {
	return m.target(m.Read().Remove(key, values...))
}

func (m *Manager) replace(s Snapshot) error {
	if m.navigator == nil {
		return ErrNoNavigator
	}
	return m.navigator.Replace(m.target(s), Options{Scroll: false})
}

func (m *Manager) target(s Snapshot) string {
	path := m.location.Current().EscapedPath()
	if path == "" {
		path = "/"
	}
	if s.Len() == 0 {
		return path
	}
	return path + "?" + s.Encode()
}

// StaticLocation is a Location fixed to a single URL, e.g. the URL of
// the request being rendered.
type StaticLocation struct {
	URL *url.URL
}

func (l StaticLocation) Current() *url.URL {
	return l.URL
}
