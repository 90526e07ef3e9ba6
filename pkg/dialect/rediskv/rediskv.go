// Package rediskv adapts logical types to a Redis hash backend, where
// every stored value is a flat string. It exists for key-value persistence
// of schema rows, and doubles as proof that dialect keys are opaque: the
// codec core never assumes the backend speaks SQL.
package rediskv

import (
	"github.com/dmitrymomot/typecodec/pkg/codec"
	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// Dialect is the key this adapter registers under.
const Dialect dialect.Key = "redis"

// Adapter projects every logical type onto Redis strings.
type Adapter struct{}

// New returns the Redis adapter.
func New() *Adapter { return &Adapter{} }

// Name implements dialect.Adapter.
func (*Adapter) Name() dialect.Key { return Dialect }

// Descriptor implements dialect.Adapter. Every supported type resolves to
// a textual projection wrapping its generic codec: generic bind first, then
// render to string; parse from string first, then generic result. Types
// with no generic codec are left to the registry's fallback, which reports
// them as a configuration error the same way every dialect does.
func (*Adapter) Descriptor(t logical.Type) (codec.Codec, error) {
	inner, err := codec.ForType(t)
	if err != nil {
		return nil, nil
	}
	return &textCodec{Base: codec.NewBase(t), inner: inner}, nil
}
