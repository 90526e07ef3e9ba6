// Package typecodec converts typed application values to and from the
// native representations of different storage backends.
//
// Models declare logical types — string, integer, exact decimal, timestamp,
// interval, enum, serialized blob — without naming a backend. At runtime, a
// dialect registry resolves each (logical type, dialect) pair to a bound
// codec: the pair of bind/unbind conversions plus the equality and
// mutability semantics change-tracking callers rely on.
//
//	reg := typecodec.New()
//
//	b, err := reg.Resolve(logical.Numeric(10, 2), "postgres")
//	if err != nil { ... }
//
//	stored, err := b.Bind(big.NewRat(1299, 100)) // -> pgtype.Numeric
//	back, err := b.Unbind(stored)                // -> *big.Rat 12.99
//
// Resolution is memoized per registry and safe for concurrent use; nil
// values always pass through untouched; failed resolutions are never
// cached.
//
// The packages compose bottom-up:
//
//   - pkg/logical — type descriptors, affinity/family resolution, variants
//   - pkg/codec — the codec contract and the generic codec per type
//   - pkg/dialect — adapter registry and resolution cache
//   - pkg/dialect/postgres, pkg/dialect/sqlite, pkg/dialect/rediskv —
//     bundled backends
//   - pkg/expr — result-type inference for typed expressions
//   - pkg/schema — table schemas, row conversion, change tracking
//
// This is a conversion library, not an ORM: no SQL generation, no
// relationship machinery, no sessions.
package typecodec
