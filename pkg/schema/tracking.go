package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/typecodec/pkg/dialect"
)

// Snapshot returns a copy of row usable as a change-tracking baseline.
// Fields whose codec declares immutable values are copied by reference;
// mutable fields (pickled blobs, JSON documents) get an independent deep
// copy, so later in-place edits of the live row leave the snapshot intact.
func (s *Schema) Snapshot(reg *dialect.Registry, key dialect.Key, row map[string]any) (map[string]any, error) {
	snap := make(map[string]any, len(row))
	for name, v := range row {
		f, ok := s.Field(name)
		if !ok {
			return nil, errors.Join(ErrUnknownField, fmt.Errorf("field %q in table %q", name, s.table))
		}
		b, err := reg.Resolve(f.Type, key)
		if err != nil {
			return nil, err
		}
		snap[name] = b.CopyValue(v)
	}
	return snap, nil
}

// Changed compares a current row against a snapshot under each field's
// equality semantics and returns the names of modified fields, sorted.
// Fields missing from either map count as changed.
func (s *Schema) Changed(reg *dialect.Registry, key dialect.Key, original, current map[string]any) ([]string, error) {
	var changed []string
	for _, f := range s.fields {
		ov, inOrig := original[f.Name]
		cv, inCur := current[f.Name]
		if !inOrig && !inCur {
			continue
		}
		if inOrig != inCur {
			changed = append(changed, f.Name)
			continue
		}
		b, err := reg.Resolve(f.Type, key)
		if err != nil {
			return nil, err
		}
		if !b.CompareValues(ov, cv) {
			changed = append(changed, f.Name)
		}
	}
	slices.Sort(changed)
	return changed, nil
}
