package schema

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// Field declares one named, typed column of a schema.
type Field struct {
	Name       string
	Type       logical.Type
	PrimaryKey bool
}

// Schema is an ordered set of typed fields belonging to one table. Build it
// with [New] or load it from a YAML document with [Load].
type Schema struct {
	table  string
	fields []Field
	index  map[string]int
}

// New builds a schema. The table name must be non-empty, at least one field
// is required, and field names must be unique; violations fail with
// [ErrInvalidSchema].
func New(table string, fields ...Field) (*Schema, error) {
	if table == "" {
		return nil, errors.Join(ErrInvalidSchema, errors.New("empty table name"))
	}
	if len(fields) == 0 {
		return nil, errors.Join(ErrInvalidSchema, errors.New("schema needs at least one field"))
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, errors.Join(ErrInvalidSchema, errors.New("field with empty name"))
		}
		if _, dup := index[f.Name]; dup {
			return nil, errors.Join(ErrInvalidSchema, fmt.Errorf("duplicate field %q", f.Name))
		}
		index[f.Name] = i
	}
	return &Schema{table: table, fields: fields, index: index}, nil
}

// Table returns the table name.
func (s *Schema) Table() string { return s.table }

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []Field { return s.fields }

// Field returns the named field.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// BindRow converts a row of application values into their storage-bound
// forms for the given dialect, one codec application per present field.
// Nil values pass through. A row key with no declared field fails with
// [ErrUnknownField] — writing an undeclared column is a caller bug.
func (s *Schema) BindRow(reg *dialect.Registry, key dialect.Key, row map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(row))
	for name, v := range row {
		f, ok := s.Field(name)
		if !ok {
			return nil, errors.Join(ErrUnknownField, fmt.Errorf("field %q in table %q", name, s.table))
		}
		b, err := reg.Resolve(f.Type, key)
		if err != nil {
			return nil, err
		}
		bound, err := b.Bind(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = bound
	}
	return out, nil
}

// UnbindRow is the inverse of BindRow: storage values back to application
// values. Columns with no declared field are passed through unchanged —
// drivers return bookkeeping columns the schema never declared.
func (s *Schema) UnbindRow(reg *dialect.Registry, key dialect.Key, row map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(row))
	for name, v := range row {
		f, ok := s.Field(name)
		if !ok {
			out[name] = v
			continue
		}
		b, err := reg.Resolve(f.Type, key)
		if err != nil {
			return nil, err
		}
		val, err := b.Unbind(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = val
	}
	return out, nil
}
