package adminclient

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned for a list request that was superseded by a
// later request for the same key.
var ErrStale = errors.New("adminclient: response superseded by a newer request")

// ListFunc fetches one page of T.
type ListFunc[T any] func(ctx context.Context, params Params) (*ListResult[T], error)

// LatestLister guarantees that only the most recent request per key
// delivers a result. Starting a request cancels the one still in flight
// for the same key, and any response that arrives after a newer request
// was started is discarded with ErrStale.
type LatestLister[T any] struct {
	fetch ListFunc[T]

	mu      sync.Mutex
	seq     map[string]uint64
	cancels map[string]context.CancelFunc
}

func NewLatestLister[T any](fetch ListFunc[T]) *LatestLister[T] {
	return &LatestLister[T]{
		fetch:   fetch,
		seq:     make(map[string]uint64),
		cancels: make(map[string]context.CancelFunc),
	}
}

// List fetches params under key.
func (l *LatestLister[T]) List(ctx context.Context, key string, params Params) (*ListResult[T], error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	l.seq[key]++
	seq := l.seq[key]
	if prev, ok := l.cancels[key]; ok {
		prev()
	}
	l.cancels[key] = cancel
	l.mu.Unlock()

	result, err := l.fetch(ctx, params)

	l.mu.Lock()
	latest := l.seq[key] == seq
	if latest {
		delete(l.cancels, key)
	}
	l.mu.Unlock()

	if !latest {
		return nil, ErrStale
	}
	return result, err
}
