package api

import "sync"

// Loader tracks the lifecycle of a view's fetch: data, loading flag and the
// last error. Responses are tied to a generation taken at request start, so a
// fetch resolving after its view moved on is discarded instead of applied.
type Loader[T any] struct {
	lock    sync.Mutex
	gen     uint64
	data    T
	err     error
	loading bool
}

// Begin marks the loader as loading and returns the generation token the
// eventual result must present to Apply.
func (l *Loader[T]) Begin() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.gen++
	l.loading = true
	l.err = nil
	return l.gen
}

// Apply records a completed fetch. It reports whether the result was current;
// stale results are dropped silently.
func (l *Loader[T]) Apply(gen uint64, data T, err error) bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	if gen != l.gen {
		return false
	}

	l.loading = false
	l.err = err
	if err == nil {
		l.data = data
	}
	return true
}

// Cancel invalidates every in-flight generation, e.g. when the owning view is
// torn down.
func (l *Loader[T]) Cancel() {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.gen++
	l.loading = false
}

// Data returns the last successfully applied value.
func (l *Loader[T]) Data() T {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.data
}

// Loading reports whether a fetch is in flight.
func (l *Loader[T]) Loading() bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.loading
}

// Err returns the error from the last applied fetch, if any.
func (l *Loader[T]) Err() error {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.err
}
