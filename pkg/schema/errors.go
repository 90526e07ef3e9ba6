package schema

import "errors"

var (
	// ErrInvalidSchema is returned for malformed schema declarations:
	// empty table name, no fields, duplicate or unnamed fields.
	ErrInvalidSchema = errors.New("schema: invalid schema declaration")

	// ErrUnknownField is returned when a row references a field the schema
	// does not declare.
	ErrUnknownField = errors.New("schema: unknown field")

	// ErrUnknownType is returned when a schema document names a type the
	// library does not define.
	ErrUnknownType = errors.New("schema: unknown type name")
)
