// Package schema declares typed table schemas and applies resolved codecs
// row-wise: the thin model layer between application structs and a storage
// driver.
//
// A [Schema] is an ordered list of named [Field] declarations, built in Go
// or loaded from a YAML document ([Load], [LoadFile]). Given a registry and
// an active dialect, it converts whole rows:
//
//	users, _ := schema.New("users",
//	    schema.Field{Name: "id", Type: logical.Integer(), PrimaryKey: true},
//	    schema.Field{Name: "email", Type: logical.String(255)},
//	    schema.Field{Name: "registered", Type: logical.DateTime(false)},
//	)
//
//	bound, err := users.BindRow(reg, "sqlite", map[string]any{
//	    "id":         int64(1),
//	    "email":      "a@b.c",
//	    "registered": time.Now(),
//	})
//
// BindRow rejects undeclared row keys; UnbindRow passes undeclared columns
// through, since drivers return bookkeeping columns the schema never asked
// for.
//
// # Change tracking
//
// [Schema.Snapshot] copies a row through each field codec's CopyValue, so
// mutable values (pickled blobs, JSON documents) are deep-copied while
// immutable ones are shared. [Schema.Changed] diffs a current row against a
// snapshot under each codec's own equality and returns the modified field
// names. This is the consumer for which codecs declare mutability at all.
package schema
