// Package codec defines the conversion contract between application values
// and their storage-bound representation, plus the generic codec for every
// built-in logical type.
//
// A [Codec] pairs a logical type with four behaviors:
//
//   - BindProcessor — converts an application value to what the storage
//     driver receives.
//   - ResultProcessor — the inverse, from driver value back to application
//     value.
//   - CompareValues / CopyValue — equality and snapshot semantics used by
//     change-tracking callers.
//   - Mutable — whether values can change in place, making identity
//     comparison insufficient.
//
// Both processor accessors return nil when the conversion is the identity;
// callers check for nil and skip the call, so "no transformation" costs
// nothing per value. Processors are never invoked on nil — the null
// sentinel passes through at the resolution layer.
//
// Round-trip invariant: for every codec and every valid value v,
//
//	result(bind(v)) == v
//
// under the codec's own CompareValues.
//
// # Generic codecs
//
// [ForType] returns the dialect-neutral codec for a logical type. Notable
// representations:
//
//   - Numeric (AsDecimal) — application values are *big.Rat, bound as
//     decimal strings formatted at the declared scale.
//   - Interval — time.Duration, bound as integral microseconds.
//   - Pickled — arbitrary values serialized with encoding/gob; callers
//     register custom concrete types with gob.Register.
//   - JSON — arbitrary values as JSON text.
//   - String with a charset — transcoded with golang.org/x/text/encoding.
//
// Mutable Pickled and JSON codecs implement CopyValue as a
// serialize/deserialize round trip and honor a caller-supplied comparator
// for equality.
//
// Failures wrap the [ErrEncode] and [ErrDecode] sentinels; check them with
// errors.Is.
package codec
