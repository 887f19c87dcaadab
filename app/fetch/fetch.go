// Package fetch holds the data-synchronization primitives every management
// screen shares: a dependency-driven query wrapper and a manual mutation
// wrapper. Both report failures through the injected feedback capability,
// which is the single notification path. Callers must not report the same
// failure again.
package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/demostore/go-store-admin/app/feedback"
)

// Query wraps an asynchronous producer. Every dependency change and every
// manual Refetch re-runs the producer; the loading flag is raised for the
// duration, a prior error is cleared, and the resolved value replaces the
// stored one wholesale.
//
// Completions are ordered by a monotonic sequence number: when a newer run
// has started before an older one resolves, the older result is discarded
// instead of overwriting fresher data.
type Query[T any] struct {
	mu       sync.Mutex
	producer func(context.Context) (T, error)
	fb       feedback.Feedback

	deps     string
	seq      uint64
	inflight int

	data    T
	hasData bool
	errMsg  string
}

func NewQuery[T any](fb feedback.Feedback, producer func(context.Context) (T, error)) *Query[T] {
	return &Query[T]{producer: producer, fb: fb}
}

// Refetch runs the producer once. The stored value is only replaced when no
// newer run started in the meantime.
func (q *Query[T]) Refetch(ctx context.Context) error {
	q.mu.Lock()
	q.seq++
	mine := q.seq
	q.inflight++
	q.errMsg = ""
	q.mu.Unlock()

	value, err := q.producer(ctx)

	q.mu.Lock()
	q.inflight--
	stale := mine != q.seq
	if !stale {
		if err != nil {
			q.errMsg = err.Error()
		} else {
			q.data = value
			q.hasData = true
		}
	}
	q.mu.Unlock()

	if stale {
		// A newer run owns the state now; this result is dropped silently.
		return nil
	}
	if err != nil {
		q.fb.Notify(feedback.KindError, err.Error())
		return err
	}
	return nil
}

// SetDeps updates the dependency set and re-runs the producer when the
// fingerprint changed. Unchanged dependencies are a no-op.
func (q *Query[T]) SetDeps(ctx context.Context, deps ...any) error {
	fingerprint := fmt.Sprintf("%v", deps)

	q.mu.Lock()
	changed := fingerprint != q.deps
	q.deps = fingerprint
	q.mu.Unlock()

	if !changed {
		return nil
	}
	return q.Refetch(ctx)
}

// Data returns the last resolved value and whether one exists yet.
func (q *Query[T]) Data() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.data, q.hasData
}

// Loading reports whether any run is in flight.
func (q *Query[T]) Loading() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inflight > 0
}

// Err returns the error message of the most recent non-stale failure, empty
// when the last run succeeded.
func (q *Query[T]) Err() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.errMsg
}

// Patch applies a local, provisional adjustment to the stored value. The
// next completed refetch replaces it; the server snapshot stays
// authoritative.
func (q *Query[T]) Patch(fn func(T) T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.hasData {
		q.data = fn(q.data)
	}
}

// Mutation wraps a write action. It never runs on its own; Do performs the
// action once, raising the loading flag for the duration and clearing any
// prior error. Failures are stored, reported through feedback exactly once,
// and returned. Callers branch on the error, not on a sentinel value.
type Mutation[A any, R any] struct {
	mu      sync.Mutex
	fn      func(context.Context, A) (R, error)
	fb      feedback.Feedback
	loading bool
	errMsg  string
}

func NewMutation[A any, R any](fb feedback.Feedback, fn func(context.Context, A) (R, error)) *Mutation[A, R] {
	return &Mutation[A, R]{fn: fn, fb: fb}
}

func (m *Mutation[A, R]) Do(ctx context.Context, arg A) (R, error) {
	m.mu.Lock()
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	result, err := m.fn(ctx, arg)
	if err != nil {
		m.mu.Lock()
		m.errMsg = err.Error()
		m.mu.Unlock()
		m.fb.Notify(feedback.KindError, err.Error())

		var zero R
		return zero, err
	}
	return result, nil
}

func (m *Mutation[A, R]) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Mutation[A, R]) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}
