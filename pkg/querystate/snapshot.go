package querystate

import (
	"net/url"
	"sort"
	"strings"
)

// Param is a single key/value pair of a query string.
type Param struct {
	Key   string
	Value string
}

// Snapshot is an immutable, ordered view of a query string. Keys may
// repeat; the order of pairs is the order they appeared in the URL.
type Snapshot struct {
	params []Param
}

// Parse reads a raw query string (without the leading '?'). Pairs that
// fail to unescape are kept verbatim.
func Parse(rawQuery string) Snapshot {
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	var params []Param
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		params = append(params, Param{Key: unescape(key), Value: unescape(value)})
	}
	return Snapshot{params: params}
}

func unescape(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	return s
}

// Get returns the first value stored under key.
func (s Snapshot) Get(key string) (string, bool) {
	for _, p := range s.params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Value returns the first value under key, or fallback when the key is
// absent or empty.
func (s Snapshot) Value(key, fallback string) string {
	if v, ok := s.Get(key); ok && v != "" {
		return v
	}
	return fallback
}

// GetAll returns every value stored under key, in order.
func (s Snapshot) GetAll(key string) []string {
	var values []string
	for _, p := range s.params {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values
}

// Has reports whether key is present.
func (s Snapshot) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Len returns the number of pairs.
func (s Snapshot) Len() int {
	return len(s.params)
}

// Params returns a copy of the ordered pairs.
func (s Snapshot) Params() []Param {
	return append([]Param(nil), s.params...)
}

// Values converts the snapshot into url.Values.
func (s Snapshot) Values() url.Values {
	values := url.Values{}
	for _, p := range s.params {
		values.Add(p.Key, p.Value)
	}
	return values
}

// Encode renders the snapshot as a query string, preserving pair order.
func (s Snapshot) Encode() string {
	var b strings.Builder
	for i, p := range s.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// SetMany returns a copy where each key in updates holds exactly the
// given value. An existing key keeps the position of its first
// occurrence; new keys are appended in lexical order.
func (s Snapshot) SetMany(updates map[string]string) Snapshot {
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := s
	for _, k := range keys {
		out = out.set(k, updates[k])
	}
	return out
}

func (s Snapshot) set(key, value string) Snapshot {
	params := make([]Param, 0, len(s.params)+1)
	found := false
	for _, p := range s.params {
		if p.Key != key {
			params = append(params, p)
			continue
		}
		if !found {
			params = append(params, Param{Key: key, Value: value})
			found = true
		}
	}
	if !found {
		params = append(params, Param{Key: key, Value: value})
	}
	return Snapshot{params: params}
}

// Add returns a copy with value appended under key.
func (s Snapshot) Add(key, value string) Snapshot {
	params := make([]Param, 0, len(s.params)+1)
	params = append(params, s.params...)
	params = append(params, Param{Key: key, Value: value})
	return Snapshot{params: params}
}

// Remove returns a copy without key. When values are given only pairs
// of key holding one of those values are dropped; the remaining values
// of key keep their order.
func (s Snapshot) Remove(key string, values ...string) Snapshot {
	params := make([]Param, 0, len(s.params))
	for _, p := range s.params {
		if p.Key == key && (len(values) == 0 || contains(values, p.Value)) {
			continue
		}
		params = append(params, p)
	}
	return Snapshot{params: params}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
