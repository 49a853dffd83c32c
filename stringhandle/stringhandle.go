// Package stringhandle resolves HAPI_StringHandle values into Go strings
// (spec.md §4.5), backed by a per-session LRU (internal/strcache) so a
// hot handle — an attribute name, a parm label — only crosses into the
// engine once.
package stringhandle

import (
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/internal/strcache"
)

// Handle is the exported alias for ffi.StringHandle; callers never need
// to import internal/ffi directly to hold one.
type Handle = ffi.StringHandle

// Resolver resolves string handles for one session, caching results.
type Resolver struct {
	session ffi.SessionHandle
	cache   *strcache.Cache
}

// NewResolver builds a Resolver bound to session with the given LRU
// capacity (0 disables eviction).
func NewResolver(session ffi.SessionHandle, cacheCapacity int) *Resolver {
	return &Resolver{session: session, cache: strcache.New(cacheCapacity)}
}

// Resolve returns the string a handle refers to, consulting the cache
// before calling into the engine.
func (r *Resolver) Resolve(h Handle) (string, error) {
	if !h.Valid() {
		return "", nil
	}
	key := strcache.Key(r.session.ID, int32(h))
	if s, ok := r.cache.Get(key); ok {
		return s, nil
	}
	s, err := ffi.GetString(r.session, h)
	if err != nil {
		return "", err
	}
	r.cache.Put(key, s)
	return s, nil
}

// ResolveAll resolves a batch of handles. It always uses the engine's
// bulk batch calls rather than one Resolve per handle, so a cold cache
// pays two engine calls (batch size, then batch fetch) regardless of
// batch size.
func (r *Resolver) ResolveAll(handles []Handle) ([]string, error) {
	out := make([]string, len(handles))
	var missIdx []int
	var missHandles []Handle
	for i, h := range handles {
		if !h.Valid() {
			continue
		}
		key := strcache.Key(r.session.ID, int32(h))
		if s, ok := r.cache.Get(key); ok {
			out[i] = s
			continue
		}
		missIdx = append(missIdx, i)
		missHandles = append(missHandles, h)
	}
	if len(missHandles) == 0 {
		return out, nil
	}
	size, err := ffi.GetStringBatchSize(r.session, missHandles)
	if err != nil {
		return nil, err
	}
	resolved, err := ffi.GetStringBatch(r.session, size)
	if err != nil {
		return nil, err
	}
	for n, idx := range missIdx {
		if n >= len(resolved) {
			break
		}
		out[idx] = resolved[n]
		r.cache.Put(strcache.Key(r.session.ID, int32(missHandles[n])), resolved[n])
	}
	return out, nil
}

// Array is a lazily-resolved list of string handles — the shape HAPI hands
// back for string-array attributes and multi-value string parms. It
// defers resolution until iterated so a caller that only needs the count
// never pays for a string fetch.
type Array struct {
	resolver *Resolver
	handles  []Handle
}

// NewArray wraps handles for lazy resolution against resolver.
func NewArray(resolver *Resolver, handles []Handle) Array {
	return Array{resolver: resolver, handles: handles}
}

// Len reports the number of handles, resolved or not.
func (a Array) Len() int { return len(a.handles) }

// At resolves and returns the string at index i.
func (a Array) At(i int) (string, error) {
	return a.resolver.Resolve(a.handles[i])
}

// All eagerly resolves every handle via one batched round trip.
func (a Array) All() ([]string, error) {
	return a.resolver.ResolveAll(a.handles)
}

// Iter lazily resolves and yields each string in order, stopping early if
// the engine call for that element fails.
func (a Array) Iter(yield func(int, string) bool) error {
	for i, h := range a.handles {
		s, err := a.resolver.Resolve(h)
		if err != nil {
			return err
		}
		if !yield(i, s) {
			return nil
		}
	}
	return nil
}
