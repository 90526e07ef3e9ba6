package rediskv

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/schema"
)

// ErrNotFound is returned when no row exists under the requested id.
var ErrNotFound = errors.New("rediskv: row not found")

// Store persists schema rows as Redis hashes, one hash per row, keyed
// "<table>:<id>". All field values go through the schema's codecs for the
// redis dialect on the way in and out.
type Store struct {
	client goredis.UniversalClient
	schema *schema.Schema
	reg    *dialect.Registry
}

// NewStore creates a store for one schema. The registry must have the
// rediskv adapter registered.
func NewStore(client goredis.UniversalClient, s *schema.Schema, reg *dialect.Registry) *Store {
	return &Store{client: client, schema: s, reg: reg}
}

func (s *Store) key(id string) string {
	return s.schema.Table() + ":" + id
}

// Save binds the row and writes it as a hash, replacing any prior value.
func (s *Store) Save(ctx context.Context, id string, row map[string]any) error {
	bound, err := s.schema.BindRow(s.reg, Dialect, row)
	if err != nil {
		return err
	}
	fields := make(map[string]any, len(bound))
	for name, v := range bound {
		if v == nil {
			// Redis hashes have no null; absent field means null.
			continue
		}
		fields[name] = v
	}
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(id))
	if len(fields) > 0 {
		pipe.HSet(ctx, s.key(id), fields)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Load reads the hash and unbinds it into application values. Missing ids
// fail with [ErrNotFound].
func (s *Store) Load(ctx context.Context, id string) (map[string]any, error) {
	data, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}
	row := make(map[string]any, len(data))
	for name, v := range data {
		row[name] = v
	}
	return s.schema.UnbindRow(s.reg, Dialect, row)
}

// Delete removes the row. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}
