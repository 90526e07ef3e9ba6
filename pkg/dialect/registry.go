package dialect

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

type cacheKey struct {
	typ     string
	dialect Key
}

// Registry resolves (logical type, dialect) pairs to bound codecs and
// memoizes the result for its own lifetime. A registry owns its cache
// explicitly: discard the registry to invalidate.
//
// Resolution is safe for concurrent use. Concurrent calls for the same pair
// are deduplicated with singleflight, so a cold cache never computes the
// same entry twice; either way both callers observe identical behavior,
// since resolution is pure and deterministic for the same inputs.
type Registry struct {
	adapters map[Key]Adapter
	cache    map[cacheKey]*Bound
	group    singleflight.Group
	opts     *options
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry. Register adapters before resolving.
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Registry{
		adapters: make(map[Key]Adapter),
		cache:    make(map[cacheKey]*Bound),
		opts:     o,
	}
}

// Register adds a dialect adapter. Registering the same key twice fails
// with [ErrConfiguration].
func (r *Registry) Register(a Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := a.Name()
	if _, exists := r.adapters[key]; exists {
		return errors.Join(ErrConfiguration, fmt.Errorf("dialect %q already registered", key))
	}
	r.adapters[key] = a
	return nil
}

// Dialects returns the registered dialect keys.
func (r *Registry) Dialects() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]Key, 0, len(r.adapters))
	for k := range r.adapters {
		keys = append(keys, k)
	}
	return keys
}

// Resolve returns the bound codec for t under the given dialect.
//
// The first resolution of a pair asks the dialect's adapter for an
// override, falls back to the generic codec when there is none, derives the
// bind and result processors, and caches the bound triple. Failed
// resolutions are never cached, so a corrected configuration can retry.
// Types carrying a custom comparator bypass the cache entirely.
func (r *Registry) Resolve(t logical.Type, key Key) (*Bound, error) {
	// A caller-supplied comparator is a function value with no structural
	// identity: two types differing only in comparator share a Key. Such
	// types resolve fresh every time so one caller's comparator can never
	// serve another's.
	if t.Comparator != nil {
		return r.resolve(t, key)
	}

	ck := cacheKey{typ: t.Key(), dialect: key}

	r.mu.RLock()
	b, ok := r.cache[ck]
	r.mu.RUnlock()
	if ok {
		return b, nil
	}

	// Deduplicate concurrent first resolutions of the same pair.
	v, err, _ := r.group.Do(ck.typ+"\x00"+string(ck.dialect), func() (any, error) {
		r.mu.RLock()
		b, ok := r.cache[ck]
		r.mu.RUnlock()
		if ok {
			return b, nil
		}

		bound, err := r.resolve(t, key)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[ck] = bound
		r.mu.Unlock()
		return bound, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Bound), nil
}

// ResolveVariant resolves a per-dialect variant: the override mapped for
// the dialect when present, the base type otherwise.
func (r *Registry) ResolveVariant(v logical.Variant, key Key) (*Bound, error) {
	return r.Resolve(v.ForDialect(string(key)), key)
}

func (r *Registry) resolve(t logical.Type, key Key) (*Bound, error) {
	r.mu.RLock()
	adapter, ok := r.adapters[key]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Join(ErrConfiguration, fmt.Errorf("unknown dialect %q", key))
	}

	impl, err := adapter.Descriptor(t)
	if err != nil {
		return nil, errors.Join(ErrAdapter, err)
	}
	overridden := impl != nil
	if !overridden {
		// No dialect override: the type must carry its own generic codec,
		// else there is nothing concrete to adapt to.
		impl, err = codec.ForType(t)
		if err != nil {
			return nil, errors.Join(ErrConfiguration, err)
		}
	}

	r.opts.logger.Debug("resolved codec",
		"type", t.Key(),
		"dialect", string(key),
		"overridden", overridden,
	)

	return newBound(impl), nil
}
