package dialect

import (
	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// Key identifies a target storage backend ("postgres", "sqlite", ...).
// The registry treats it as opaque; only adapters give it meaning.
type Key string

// Adapter supplies dialect-specific codec implementations. An adapter is a
// lookup table from logical types to concrete codecs for one backend.
//
// Descriptor returns (nil, nil) when the dialect has no override for t; the
// registry then falls back to the generic codec. Returning an error aborts
// the resolution and surfaces to the caller as [ErrAdapter]; the failed
// resolution is not cached.
type Adapter interface {
	// Name returns the dialect key this adapter serves.
	Name() Key

	// Descriptor returns the dialect-specific codec for t, or nil to use
	// the generic codec for t unchanged.
	Descriptor(t logical.Type) (codec.Codec, error)
}
