package dialect

import "github.com/dmitrymomot/typecodec/pkg/codec"

// Bound is a resolved (logical type, dialect) triple: the concrete codec
// implementation plus its derived bind and result processors. Bound values
// are immutable and shared between all callers of the owning registry.
type Bound struct {
	codec  codec.Codec
	bind   codec.Processor
	result codec.Processor
}

func newBound(impl codec.Codec) *Bound {
	return &Bound{
		codec:  impl,
		bind:   impl.BindProcessor(),
		result: impl.ResultProcessor(),
	}
}

// Codec returns the resolved dialect-specific implementation.
func (b *Bound) Codec() codec.Codec { return b.codec }

// HasBind reports whether binding transforms values at all. Callers on hot
// paths skip Bind entirely when it is false.
func (b *Bound) HasBind() bool { return b.bind != nil }

// HasResult reports whether result conversion transforms values at all.
func (b *Bound) HasResult() bool { return b.result != nil }

// Bind converts an application value to its storage-bound form. Nil passes
// through untouched; so does every value when the codec declares no bind
// processor.
func (b *Bound) Bind(v any) (any, error) {
	if v == nil || b.bind == nil {
		return v, nil
	}
	return b.bind(v)
}

// Unbind converts a storage value back to its application form, inverse of
// Bind. Nil passes through untouched.
func (b *Bound) Unbind(v any) (any, error) {
	if v == nil || b.result == nil {
		return v, nil
	}
	return b.result(v)
}

// CompareValues applies the codec's equality semantics.
func (b *Bound) CompareValues(x, y any) bool { return b.codec.CompareValues(x, y) }

// CopyValue applies the codec's snapshot semantics.
func (b *Bound) CopyValue(v any) any { return b.codec.CopyValue(v) }

// Mutable reports the codec's mutability declaration.
func (b *Bound) Mutable() bool { return b.codec.Mutable() }
