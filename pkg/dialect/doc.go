// Package dialect maps logical types to concrete per-backend codecs through
// an explicit, caller-owned registry.
//
// A [Registry] holds one [Adapter] per backend. [Registry.Resolve] asks the
// active dialect's adapter for an override codec, falls back to the generic
// codec when the adapter declines, derives the bind/result processors once,
// and memoizes the resulting [Bound] triple for the registry's lifetime:
//
//	reg := dialect.NewRegistry()
//	if err := reg.Register(postgres.New()); err != nil { ... }
//
//	b, err := reg.Resolve(logical.DateTime(false), "postgres")
//	stored, err := b.Bind(t)       // application -> driver value
//	back, err := b.Unbind(stored)  // driver value -> application
//
// The cache is keyed by the type's structural key plus the dialect key, so
// equal type declarations share entries. Resolution failures — unknown
// dialect, adapter error, type without a codec — are never cached; a
// corrected configuration can simply retry.
//
// Concurrent Resolve calls are safe: lookups take a read lock and cold
// resolutions for the same pair are collapsed with
// golang.org/x/sync/singleflight. Redundant recomputation would be harmless
// anyway — resolution is a pure function of its inputs — but collapsing
// keeps the cache write single-writer per key.
//
// # Errors
//
//   - [ErrConfiguration] — unknown dialect key, duplicate registration, or
//     a type lacking any codec. Caller mistakes; fix the setup and retry.
//   - [ErrAdapter] — the dialect's own lookup failed. Surfaced unchanged.
//
// Check both with errors.Is.
package dialect
