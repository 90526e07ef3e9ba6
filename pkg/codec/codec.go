package codec

import (
	"reflect"

	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// Processor converts a single non-nil value between its application
// representation and its storage-bound representation.
type Processor func(v any) (any, error)

// Codec is the conversion contract for one logical type: how values are
// bound for the storage driver, how driver results are turned back into
// application values, and how values are compared and copied by
// change-tracking callers.
//
// BindProcessor and ResultProcessor return nil when no transformation is
// required; callers skip invoking a nil processor entirely, which keeps the
// identity conversion distinguishable from a no-op function call.
// Processors are never invoked on nil values — the null sentinel always
// passes through untouched.
type Codec interface {
	// LogicalType returns the logical type this codec converts.
	LogicalType() logical.Type

	// BindProcessor returns the application-to-storage conversion, or nil
	// when values go to the driver unchanged.
	BindProcessor() Processor

	// ResultProcessor returns the storage-to-application conversion, or nil
	// when driver values come back unchanged.
	ResultProcessor() Processor

	// CompareValues reports whether two application values are equal under
	// this type's equality semantics.
	CompareValues(x, y any) bool

	// CopyValue returns a value usable as an independent snapshot of v.
	// Immutable types return v itself; mutable types return a deep copy.
	CopyValue(v any) any

	// Mutable reports whether values of this type can change in place, so
	// identity comparison alone cannot detect modification. Mutable codecs
	// pair this with a deep CopyValue.
	Mutable() bool
}

// Base provides immutable-type defaults for the Codec contract: no
// processors, structural equality, copy-by-reference. Concrete codecs embed
// it and override what they need.
type Base struct {
	typ logical.Type
}

// NewBase returns a Base carrying the given logical type.
func NewBase(t logical.Type) Base { return Base{typ: t} }

func (b Base) LogicalType() logical.Type  { return b.typ }
func (b Base) BindProcessor() Processor   { return nil }
func (b Base) ResultProcessor() Processor { return nil }
func (b Base) CopyValue(v any) any        { return v }
func (b Base) Mutable() bool              { return false }

// CompareValues compares by ==, falling back to reflect.DeepEqual for
// dynamic types Go cannot compare directly (slices, maps).
func (b Base) CompareValues(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if reflect.TypeOf(x).Comparable() && reflect.TypeOf(y).Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}
