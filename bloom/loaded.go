package bloom

import "sync"

// LoadedFilter is a concurrency-safe holder for a *Filter, mirroring the
// teacher's Filter{mtx sync.Mutex, msgFilterLoad *wire.MsgFilterLoad}
// wrapper: a real SPV client reloads its filter on a schedule (to bound
// false-positive leakage over time) while other goroutines keep scanning
// blocks against whatever filter is currently loaded.
type LoadedFilter struct {
	mtx    sync.Mutex
	filter *Filter
}

// NewLoadedFilter wraps filter in a concurrency-safe holder. filter may be
// nil, in which case IsLoaded reports false until Reload is called.
func NewLoadedFilter(filter *Filter) *LoadedFilter {
	return &LoadedFilter{filter: filter}
}

// IsLoaded reports whether a filter is currently loaded.
func (l *LoadedFilter) IsLoaded() bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.filter != nil
}

// Reload replaces the held filter, discarding any previous one.
func (l *LoadedFilter) Reload(filter *Filter) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.filter = filter
}

// Unload clears the held filter.
func (l *LoadedFilter) Unload() {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.filter = nil
}

// Current returns the currently loaded filter, or nil if none is loaded.
// The returned value must not be mutated by the caller; use Current().Clone()
// if a private copy is needed.
func (l *LoadedFilter) Current() *Filter {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.filter
}
